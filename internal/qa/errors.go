package qa

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNoValidResponse Kind = iota
	KindInvalidCredential
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredential:
		return "invalid_credential"
	default:
		return "no_valid_response"
	}
}

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNoValidResponse   = errors.New("no valid response from the model")
)

const (
	invalidCredentialMessage = "Your API key is not valid. Please check your configuration."
	noValidResponseMessage   = "Failed to get a valid response from the AI model. The model may be unable to find relevant information for your query."
	unknownErrorMessage      = "An unknown error occurred. Please check the logs and ensure your API key is configured correctly."
)

// Error is returned by Adapter.Ask for every failure
type Error struct {
	Kind Kind
	// Err is the underlying cause, kept for logs
	Err error
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error kind
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

// UserMessage is the message shown to the user, without internal details
func (e *Error) UserMessage() string {
	if e.Kind == KindInvalidCredential {
		return invalidCredentialMessage
	}
	return noValidResponseMessage
}

func (e *Error) sentinel() error {
	if e.Kind == KindInvalidCredential {
		return ErrInvalidCredential
	}
	return ErrNoValidResponse
}

// UserMessage returns the user-facing message for an error returned by the adapter
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var qaErr *Error
	if errors.As(err, &qaErr) {
		return qaErr.UserMessage()
	}
	return unknownErrorMessage
}
