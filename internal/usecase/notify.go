package usecase

import "github.com/pkg/errors"

var ErrUnknownTemplate = errors.New("unknown template")

const VariantDestructive = "destructive"

// Notification is the payload shown to the user when an operation fails.
type Notification struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Variant     string            `json:"variant"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// NotifyError carries the user-facing wording for a failed operation along
// with the underlying error.
type NotifyError struct {
	Title       string
	Description string
	Err         error
}

func (e *NotifyError) Error() string {
	if e.Err == nil {
		return e.Title
	}
	return e.Title + ": " + e.Err.Error()
}

func (e *NotifyError) Unwrap() error { return e.Err }

func (e *NotifyError) Cause() error { return e.Err }

func (e *NotifyError) Notification() Notification {
	return Notification{Title: e.Title, Description: e.Description, Variant: VariantDestructive}
}

func notify(err error, title, description string) error {
	if err == nil {
		return nil
	}
	return &NotifyError{Title: title, Description: description, Err: err}
}
