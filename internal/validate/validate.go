// Package validate checks form fields against a static per-field rule table.
//
// Every check is a pure function over (field name, raw value). A field's
// rules run in order and the first failing rule's message wins; later rules
// are not evaluated. Unknown field names validate clean so callers can pass
// whatever the form surface grows without coordinating with this package.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rolodeck/rolodeck/internal/record"
)

// Field names understood by Check. They match the form's input names.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldDateOfBirth = "dateOfBirth"
	FieldAge         = "age"
	FieldCountry     = "country"
	FieldState       = "state"
	FieldCity        = "city"
	FieldZip         = "zip"
)

// Fields lists every validated field in form order.
var Fields = []string{
	FieldName, FieldPhone, FieldEmail, FieldDateOfBirth, FieldAge,
	FieldCountry, FieldState, FieldCity, FieldZip,
}

const (
	minAge = 10
	maxAge = 100

	dateLayout = "2006-01-02"
)

var (
	// Deliberately RFC-light: something@something.tld.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	zipPattern   = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// rule evaluates a raw value and returns an error message, or "" when the
// value passes.
type rule func(raw string) string

var rules = map[string][]rule{
	FieldName: {
		required("Name is required"),
		lengthBetween(3, 50, "Name must be between 3 and 50 characters"),
	},
	FieldPhone: {
		required("Phone number is required"),
		matches(phonePattern, "Phone number must be exactly 10 digits"),
	},
	FieldEmail: {
		required("Email is required"),
		matches(emailPattern, "Enter a valid email address"),
	},
	FieldDateOfBirth: {
		required("Date of birth is required"),
		dateOfBirthInRange,
	},
	FieldAge: {
		required("Age is required"),
		ageInRange,
	},
	FieldCountry: {required("Country is required")},
	FieldState:   {required("State is required")},
	FieldCity:    {required("City is required")},
	FieldZip: {
		required("Zip code is required"),
		matches(zipPattern, "Zip code must be 5 digits, optionally followed by -NNNN"),
	},
}

// Check validates a single field. The returned message is empty when the
// value passes. Unknown field names always pass.
func Check(field, raw string) string {
	for _, r := range rules[field] {
		if msg := r(raw); msg != "" {
			return msg
		}
	}
	return ""
}

// CheckAll validates every known field of a record and returns the
// first-failure message per failing field. An empty map means the record
// is valid.
func CheckAll(rec record.Record) map[string]string {
	values := map[string]string{
		FieldName:        rec.Name,
		FieldPhone:       rec.Phone,
		FieldEmail:       rec.Email,
		FieldDateOfBirth: rec.DateOfBirth,
		FieldAge:         strconv.Itoa(rec.Age),
		FieldCountry:     rec.Country,
		FieldState:       rec.State,
		FieldCity:        rec.City,
		FieldZip:         rec.Zip,
	}
	errs := make(map[string]string)
	for _, field := range Fields {
		if msg := Check(field, values[field]); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

func required(msg string) rule {
	return func(raw string) string {
		if strings.TrimSpace(raw) == "" {
			return msg
		}
		return ""
	}
}

func lengthBetween(min, max int, msg string) rule {
	return func(raw string) string {
		n := len(strings.TrimSpace(raw))
		if n < min || n > max {
			return msg
		}
		return ""
	}
}

func matches(re *regexp.Regexp, msg string) rule {
	return func(raw string) string {
		if !re.MatchString(strings.TrimSpace(raw)) {
			return msg
		}
		return ""
	}
}

func ageInRange(raw string) string {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "Age must be a whole number"
	}
	if age < minAge || age > maxAge {
		return fmt.Sprintf("Age must be between %d and %d", minAge, maxAge)
	}
	return ""
}

func dateOfBirthInRange(raw string) string {
	dob, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "Date of birth must be a valid YYYY-MM-DD date"
	}
	age := yearsSince(dob, time.Now())
	if age < minAge || age > maxAge {
		return fmt.Sprintf("Date of birth implies an age outside %d-%d", minAge, maxAge)
	}
	return ""
}

// yearsSince computes whole years between dob and now, counting down one
// year when the birthday has not yet occurred.
func yearsSince(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
