// Package sink carries notifications from the directory out to a connected
// peer. The directory pushes while holding its lock, so a sink must never
// block: frames go onto a buffered channel and are dropped with a warning
// when the peer cannot keep up.
package sink

import (
	"log/slog"

	"github.com/samber/lo"

	"presence-lab/domain"
	"presence-lab/errors"
)

// SessionSink is the gateway-side implementation of domain.ClientSession.
//
// A session that did not declare metadata capability at login refuses
// extended attributes with errors.ErrMetadataUnsupported, which makes the
// directory retry the same message without them. The refusal is decided here,
// synchronously, so the attempt/retry pair stays adjacent on the wire.
type SessionSink struct {
	log              *slog.Logger
	frames           chan Frame
	supportsMetadata bool
}

func NewSessionSink(log *slog.Logger, bufferSize int, supportsMetadata bool) *SessionSink {
	return &SessionSink{
		log:              log,
		frames:           make(chan Frame, bufferSize),
		supportsMetadata: supportsMetadata,
	}
}

// Frames is consumed by the gateway's write pump.
func (s *SessionSink) Frames() <-chan Frame { return s.frames }

func (s *SessionSink) push(f Frame) error {
	select {
	case s.frames <- f:
	default:
		s.log.Warn("session buffer full, dropping frame", "kind", f.Kind)
	}
	return nil
}

func (s *SessionSink) ReceiveContactList(contacts []domain.ContactStatus) error {
	return s.push(Frame{
		Kind: KindContactList,
		Contacts: lo.Map(contacts, func(c domain.ContactStatus, _ int) Contact {
			return Contact{Name: c.Name, Status: c.Status.String()}
		}),
	})
}

func (s *SessionSink) NotifyStatusChanged(name string, status domain.Status) error {
	return s.push(Frame{Kind: KindStatusChanged, Name: name, Status: status.String()})
}

func (s *SessionSink) ReceiveGroupMembers(names []string, group string) error {
	return s.push(Frame{Kind: KindGroupMembers, Group: group, Names: names})
}

func (s *SessionSink) ReceiveDirectMessage(sender, message string, metadata domain.Metadata) error {
	if len(metadata) > 0 && !s.supportsMetadata {
		return errors.ErrMetadataUnsupported
	}
	return s.push(Frame{Kind: KindDirectMessage, Sender: sender, Message: message, Metadata: metadata})
}

func (s *SessionSink) ReceiveGroupMessage(sender, group, message string, metadata domain.Metadata) error {
	if len(metadata) > 0 && !s.supportsMetadata {
		return errors.ErrMetadataUnsupported
	}
	return s.push(Frame{Kind: KindGroupMessage, Sender: sender, Group: group, Message: message, Metadata: metadata})
}

func (s *SessionSink) MemberJoined(member, group string) error {
	return s.push(Frame{Kind: KindMemberJoined, Name: member, Group: group})
}

func (s *SessionSink) MemberLeft(member, group string) error {
	return s.push(Frame{Kind: KindMemberLeft, Name: member, Group: group})
}

func (s *SessionSink) SetGroupMetadata(metadata map[string]string, group string) error {
	return s.push(Frame{Kind: KindGroupMetadata, Group: group, Metadata: metadata})
}
