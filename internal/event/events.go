package event

import "github.com/rolodeck/rolodeck/internal/record"

// Topic names an event stream on the bus. The literal values are the wire
// names the views and controller agree on.
type Topic string

const (
	TopicSubmitCreate   Topic = "formSubmit"
	TopicSubmitUpdate   Topic = "updateFormData"
	TopicRequestEdit    Topic = "editItem"
	TopicRequestDelete  Topic = "deleteData"
	TopicRequestRestore Topic = "restoreDeleteData"
)

// Event is the closed set of payloads that may cross the bus. Each payload
// type carries its own topic, so a payload can never be published under the
// wrong name.
type Event interface {
	Topic() Topic
}

// SubmitCreate carries a validated form submission with no id or timestamp
// assigned yet.
type SubmitCreate struct {
	Record record.Record
}

// SubmitUpdate carries a validated edit of an existing record. Record.ID is
// the id the form was bound to.
type SubmitUpdate struct {
	Record record.Record
}

// RequestEdit asks for the record with the given id to be loaded into the
// form.
type RequestEdit struct {
	ID string
}

// RequestDelete asks for a record to be moved to the trash. Confirmation is
// the text the user typed into the confirmation prompt; the controller only
// proceeds when it equals the literal word "delete".
type RequestDelete struct {
	ID           string
	Confirmation string
}

// RequestRestore asks for a trashed record to be moved back to the active
// set.
type RequestRestore struct {
	ID string
}

func (SubmitCreate) Topic() Topic   { return TopicSubmitCreate }
func (SubmitUpdate) Topic() Topic   { return TopicSubmitUpdate }
func (RequestEdit) Topic() Topic    { return TopicRequestEdit }
func (RequestDelete) Topic() Topic  { return TopicRequestDelete }
func (RequestRestore) Topic() Topic { return TopicRequestRestore }
