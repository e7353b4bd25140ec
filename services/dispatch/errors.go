package dispatch

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrValidation      = errors.New("validation failed")
	ErrNoIdentity      = errors.New("no signed-in user")
	ErrUnknownTable    = errors.New("unknown table")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrUnknownProc     = errors.New("unknown procedure")
	ErrPastSchedule    = fmt.Errorf("%w: date and time must be in the future", ErrValidation)
	ErrInvalidSchedule = fmt.Errorf("%w: invalid date or time", ErrValidation)
)

// User-facing messages stored on the provider's error field
const (
	MsgLoadFailed       = "Some data could not be loaded. Please try refreshing the page."
	MsgRefreshFailed    = "Failed to refresh data"
	MsgPastSchedule     = "Date and time must be in the future"
	MsgInvalidSchedule  = "Invalid date or time"
	MsgCompletePayment  = "Failed to complete payment"
	MsgNotSignedIn      = "You must be signed in"
	entityCompany       = "company"
	entityDriver        = "driver"
	entityCarType       = "car type"
	entityProject       = "project"
	entityPayment       = "payment"
	addMessageFormat    = "Failed to add %s"
	updateMessageFormat = "Failed to update %s"
	deleteMessageFormat = "Failed to delete %s"
)

// Entity labels used in messages
const (
	EntityCompany = entityCompany
	EntityDriver  = entityDriver
	EntityCarType = entityCarType
	EntityProject = entityProject
	EntityPayment = entityPayment
)

// AddMessage is the message recorded when creating entity fails
func AddMessage(entity string) string { return fmt.Sprintf(addMessageFormat, entity) }

// UpdateMessage is the message recorded when updating entity fails
func UpdateMessage(entity string) string { return fmt.Sprintf(updateMessageFormat, entity) }

// DeleteMessage is the message recorded when deleting entity fails
func DeleteMessage(entity string) string { return fmt.Sprintf(deleteMessageFormat, entity) }

// OpError is returned by provider operations; Message is what the provider
// recorded on its shared error field.
type OpError struct {
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }
