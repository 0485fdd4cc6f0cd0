package validate

import (
	"testing"
	"time"

	"github.com/rolodeck/rolodeck/internal/record"
)

func TestCheck_Name(t *testing.T) {
	cases := []struct {
		raw    string
		wantOK bool
	}{
		{"", false},
		{"  ", false},
		{"Al", false},
		{"Ana", true},
		{"Ana Maria de la Cruz", true},
	}
	for _, tc := range cases {
		msg := Check(FieldName, tc.raw)
		if (msg == "") != tc.wantOK {
			t.Errorf("Check(name, %q) = %q, want ok=%v", tc.raw, msg, tc.wantOK)
		}
	}
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	if Check(FieldName, string(long)) == "" {
		t.Errorf("Check(name, 51 chars) should fail")
	}
}

func TestCheck_Email(t *testing.T) {
	if Check(FieldEmail, "a@b") == "" {
		t.Fatalf("Check(email, a@b) should fail: missing TLD")
	}
	if msg := Check(FieldEmail, "a@b.com"); msg != "" {
		t.Fatalf("Check(email, a@b.com) = %q, want ok", msg)
	}
	if Check(FieldEmail, "") == "" {
		t.Fatalf("Check(email, empty) should fail")
	}
	if Check(FieldEmail, "no spaces@x.com") == "" {
		t.Fatalf("Check(email, with space) should fail")
	}
}

func TestCheck_Phone(t *testing.T) {
	if Check(FieldPhone, "12345") == "" {
		t.Fatalf("Check(phone, 12345) should fail: needs exactly 10 digits")
	}
	if msg := Check(FieldPhone, "5551234567"); msg != "" {
		t.Fatalf("Check(phone, 5551234567) = %q, want ok", msg)
	}
	if Check(FieldPhone, "55512345678") == "" {
		t.Fatalf("Check(phone, 11 digits) should fail")
	}
	if Check(FieldPhone, "555123456a") == "" {
		t.Fatalf("Check(phone, non-digit) should fail")
	}
}

func TestCheck_Age(t *testing.T) {
	if msg := Check(FieldAge, "15"); msg != "" {
		t.Fatalf("Check(age, 15) = %q, want ok", msg)
	}
	if Check(FieldAge, "5") == "" {
		t.Fatalf("Check(age, 5) should fail: below 10")
	}
	if Check(FieldAge, "101") == "" {
		t.Fatalf("Check(age, 101) should fail: above 100")
	}
	if Check(FieldAge, "twelve") == "" {
		t.Fatalf("Check(age, twelve) should fail: not an integer")
	}
	if msg := Check(FieldAge, "10"); msg != "" {
		t.Fatalf("Check(age, 10) = %q, want ok at lower bound", msg)
	}
	if msg := Check(FieldAge, "100"); msg != "" {
		t.Fatalf("Check(age, 100) = %q, want ok at upper bound", msg)
	}
}

func TestCheck_DateOfBirth(t *testing.T) {
	if Check(FieldDateOfBirth, "not-a-date") == "" {
		t.Fatalf("Check(dateOfBirth, garbage) should fail")
	}
	// 24 years old as of any plausible test run date.
	dob := time.Now().AddDate(-24, 0, 0).Format("2006-01-02")
	if msg := Check(FieldDateOfBirth, dob); msg != "" {
		t.Fatalf("Check(dateOfBirth, %s) = %q, want ok", dob, msg)
	}
	// 5 years old: derived age below the floor.
	young := time.Now().AddDate(-5, 0, 0).Format("2006-01-02")
	if Check(FieldDateOfBirth, young) == "" {
		t.Fatalf("Check(dateOfBirth, %s) should fail: derived age below 10", young)
	}
	old := "1880-01-01"
	if Check(FieldDateOfBirth, old) == "" {
		t.Fatalf("Check(dateOfBirth, %s) should fail: derived age above 100", old)
	}
}

func TestCheck_Zip(t *testing.T) {
	cases := []struct {
		raw    string
		wantOK bool
	}{
		{"90001", true},
		{"90001-1234", true},
		{"9000", false},
		{"90001-12", false},
		{"", false},
		{"abcde", false},
	}
	for _, tc := range cases {
		msg := Check(FieldZip, tc.raw)
		if (msg == "") != tc.wantOK {
			t.Errorf("Check(zip, %q) = %q, want ok=%v", tc.raw, msg, tc.wantOK)
		}
	}
}

func TestCheck_RequiredOnly(t *testing.T) {
	for _, field := range []string{FieldCountry, FieldState, FieldCity} {
		if Check(field, "") == "" {
			t.Errorf("Check(%s, empty) should fail", field)
		}
		if msg := Check(field, "x"); msg != "" {
			t.Errorf("Check(%s, x) = %q, want ok", field, msg)
		}
	}
}

func TestCheck_UnknownFieldPasses(t *testing.T) {
	if msg := Check("nickname", ""); msg != "" {
		t.Fatalf("Check(unknown field) = %q, want ok", msg)
	}
}

func TestCheck_FirstFailureWins(t *testing.T) {
	// Empty name fails the required rule, not the length rule.
	if msg := Check(FieldName, ""); msg != "Name is required" {
		t.Fatalf("Check(name, empty) = %q, want required message first", msg)
	}
}

func TestCheckAll(t *testing.T) {
	dob := time.Now().AddDate(-24, 0, 0).Format("2006-01-02")
	valid := record.Record{
		Name:        "Ana",
		Phone:       "5551234567",
		Email:       "ana@x.com",
		DateOfBirth: dob,
		Age:         24,
		Country:     "USA",
		State:       "California",
		City:        "Los Angeles",
		Zip:         "90001",
	}
	if errs := CheckAll(valid); len(errs) != 0 {
		t.Fatalf("CheckAll(valid) = %v, want empty", errs)
	}

	invalid := valid
	invalid.Email = "a@b"
	invalid.Phone = "12345"
	errs := CheckAll(invalid)
	if len(errs) != 2 {
		t.Fatalf("CheckAll(invalid) has %d errors (%v), want 2", len(errs), errs)
	}
	if _, ok := errs[FieldEmail]; !ok {
		t.Fatalf("CheckAll missing email error: %v", errs)
	}
	if _, ok := errs[FieldPhone]; !ok {
		t.Fatalf("CheckAll missing phone error: %v", errs)
	}
}

func TestYearsSince(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		dob  string
		want int
	}{
		{"2000-01-01", 24},
		{"2000-06-15", 24},
		{"2000-06-16", 23},
		{"2000-12-31", 23},
	}
	for _, tc := range cases {
		dob, err := time.Parse("2006-01-02", tc.dob)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.dob, err)
		}
		if got := yearsSince(dob, now); got != tc.want {
			t.Errorf("yearsSince(%s) = %d, want %d", tc.dob, got, tc.want)
		}
	}
}
