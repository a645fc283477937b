package contact

import (
	"errors"
	"fmt"

	"github.com/devsomeware/contactkit/pkg/validator"
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// ParseField maps an input name to a Field.
func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldMessage:
		return f, true
	}
	return "", false
}

// FormState holds the current value of every form input.
type FormState struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Set replaces the value of one field. It panics on an unknown field.
func (f FormState) Set(field Field, value string) FormState {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		panic(fmt.Sprintf("contact: unknown form field %q", field))
	}
	return f
}

// Get returns the value of one field. It panics on an unknown field.
func (f FormState) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	panic(fmt.Sprintf("contact: unknown form field %q", field))
}

// ErrIncompleteForm is returned when a submission misses a field or carries a
// malformed email address.
var ErrIncompleteForm = errors.New("contact.errors.incomplete_form")

// Validate mirrors the browser constraints of the form: every field is
// required and the email input must hold an address.
func (f FormState) Validate() error {
	err := validator.Apply(
		validator.NotEmpty(string(FieldName), f.Name),
		validator.NotEmpty(string(FieldEmail), f.Email),
		validator.NotEmpty(string(FieldMessage), f.Message),
	)
	if err == nil && !validator.IsEmail(f.Email) {
		err = validator.Apply(validator.ValidEmail(string(FieldEmail), f.Email))
	}
	if err != nil {
		return errors.Join(ErrIncompleteForm, err)
	}
	return nil
}

// AlertKind selects the alert styling.
type AlertKind string

const (
	AlertDanger  AlertKind = "danger"
	AlertSuccess AlertKind = "success"
)

const (
	SuccessText = "Thank you for your message 😃"
	FailureText = "I didn't receive your message 😢"
)

// AlertState describes the transient notification.
type AlertState struct {
	Show bool
	Text string
	Kind AlertKind
}

// HiddenAlert is the initial and post-hide alert state.
var HiddenAlert = AlertState{Show: false, Text: "", Kind: AlertDanger}

// State is the complete UI state of one page session.
type State struct {
	Form    FormState
	Alert   AlertState
	Loading bool
}

// InitialState returns an empty form with the alert hidden.
func InitialState() State {
	return State{Alert: HiddenAlert}
}

// Event is a state transition input for Reduce.
type Event interface {
	event()
}

type (
	// FieldChanged replaces the value of one field.
	FieldChanged struct {
		Field Field
		Value string
	}
	// SubmitStarted marks the outbound call as in flight.
	SubmitStarted struct{}
	// DeliverySucceeded clears the in-flight flag and shows the success alert.
	DeliverySucceeded struct{}
	// DeliveryFailed clears the in-flight flag and shows the failure alert.
	DeliveryFailed struct{ Err error }
	// AlertShown overwrites the alert.
	AlertShown struct {
		Kind AlertKind
		Text string
	}
	AlertHidden struct{}
	FormReset   struct{}
)

func (FieldChanged) event()      {}
func (SubmitStarted) event()     {}
func (DeliverySucceeded) event() {}
func (DeliveryFailed) event()    {}
func (AlertShown) event()        {}
func (AlertHidden) event()       {}
func (FormReset) event()         {}

// Reduce applies ev to s and returns the new state. It has no side effects.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case FieldChanged:
		s.Form = s.Form.Set(e.Field, e.Value)
	case SubmitStarted:
		s.Loading = true
	case DeliverySucceeded:
		s.Loading = false
		s = Reduce(s, AlertShown{Kind: AlertSuccess, Text: SuccessText})
	case DeliveryFailed:
		s.Loading = false
		s = Reduce(s, AlertShown{Kind: AlertDanger, Text: FailureText})
	case AlertShown:
		s.Alert = AlertState{Show: true, Text: e.Text, Kind: e.Kind}
	case AlertHidden:
		s.Alert = HiddenAlert
	case FormReset:
		s.Form = FormState{}
	default:
		panic(fmt.Sprintf("contact: unknown event %T", ev))
	}
	return s
}
