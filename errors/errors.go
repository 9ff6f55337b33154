// Package errors defines the error taxonomy of the presence directory.
// All errors here are expected, recoverable-by-caller conditions; none is
// process-fatal. Each carries the structured fields a transport needs to
// build a protocol reply without parsing strings.
package errors

import "fmt"

var (
	// ErrMetadataUnsupported is the capability signal a client session
	// returns when it cannot accept extended message attributes. It is the
	// only error the delivery path retries on.
	ErrMetadataUnsupported = fmt.Errorf("client does not support message metadata")

	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrDuplicateLogin     = fmt.Errorf("duplicate login not permitted")
	ErrBadCredentials     = fmt.Errorf("unknown account or wrong password")
	ErrAccountExists      = fmt.Errorf("account already registered")
	ErrSessionNotAttached = fmt.Errorf("no live session attached")
)

// NotInCollectionError reports a contact lookup miss on a participant's own
// contact list.
type NotInCollectionError struct {
	Contact string
}

func (e NotInCollectionError) Error() string {
	return fmt.Sprintf("no such contact %q", e.Contact)
}

// NotInGroupError reports that a participant is not a member of a group.
// Participant is empty when the caller itself is the missing member, which
// changes the phrasing only.
type NotInGroupError struct {
	Group       string
	Participant string
}

func (e NotInGroupError) Error() string {
	if e.Participant != "" {
		return fmt.Sprintf("%q is not in group %q", e.Participant, e.Group)
	}
	return fmt.Sprintf("you are not in group %q", e.Group)
}

// UserNonexistantError reports a directory lookup miss. The historical
// spelling is kept for wire compatibility with older clients.
type UserNonexistantError struct {
	Name string
}

func (e UserNonexistantError) Error() string {
	return fmt.Sprintf("%q does not exist", e.Name)
}

// WrongStatusError reports that an action required a presence status the
// target does not have, e.g. messaging a participant with no live session.
type WrongStatusError struct {
	Status string
	Name   string
}

func (e WrongStatusError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%q status is %q", e.Name, e.Status)
	}
	return fmt.Sprintf("user status is %q", e.Status)
}

// AuthorizationError guards the single-session invariant during attach.
type AuthorizationError struct {
	Reason string
}

func (e AuthorizationError) Error() string {
	return e.Reason
}
