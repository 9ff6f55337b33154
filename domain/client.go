//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks
package domain

// Metadata carries extended message attributes, e.g. {"style": "emote"}.
// It must stay optional: a session may refuse it (see ClientSession).
type Metadata map[string]string

// ContactStatus pairs a contact name with its current presence status.
type ContactStatus struct {
	Name   string
	Status Status
}

// ClientSession is the notification contract a live session implements.
// The directory consumes it; the transport layer provides it.
//
// ReceiveDirectMessage and ReceiveGroupMessage may return
// errors.ErrMetadataUnsupported when called with non-empty metadata. That is
// the capability signal driving the delivery fallback: the same message is
// retried exactly once with metadata stripped. Any other error is treated as
// a failed push, never retried here.
type ClientSession interface {
	ReceiveContactList(contacts []ContactStatus) error
	NotifyStatusChanged(name string, status Status) error
	ReceiveGroupMembers(names []string, group string) error
	ReceiveDirectMessage(sender, message string, metadata Metadata) error
	ReceiveGroupMessage(sender, group, message string, metadata Metadata) error
	MemberJoined(member, group string) error
	MemberLeft(member, group string) error
	SetGroupMetadata(metadata map[string]string, group string) error
}

// Placeholder is a transient stand-in for a session slot. Attach treats a
// participant holding one as free, unlike a real session which triggers the
// duplicate-login guard.
type Placeholder struct{}

func (Placeholder) ReceiveContactList([]ContactStatus) error                  { return nil }
func (Placeholder) NotifyStatusChanged(string, Status) error                  { return nil }
func (Placeholder) ReceiveGroupMembers([]string, string) error                { return nil }
func (Placeholder) ReceiveDirectMessage(string, string, Metadata) error       { return nil }
func (Placeholder) ReceiveGroupMessage(string, string, string, Metadata) error { return nil }
func (Placeholder) MemberJoined(string, string) error                         { return nil }
func (Placeholder) MemberLeft(string, string) error                           { return nil }
func (Placeholder) SetGroupMetadata(map[string]string, string) error          { return nil }
