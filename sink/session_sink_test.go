package sink

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"presence-lab/domain"
	"presence-lab/errors"
)

func Test_Sink_Refuses_Metadata_When_Not_Supported(t *testing.T) {
	req := require.New(t)
	sink := NewSessionSink(slog.Default(), 4, false)

	err := sink.ReceiveDirectMessage("alice", "waves", domain.Metadata{"style": "emote"})
	req.ErrorIs(err, errors.ErrMetadataUnsupported)
	req.Empty(sink.Frames())

	err = sink.ReceiveGroupMessage("alice", "lobby", "waves", domain.Metadata{"style": "emote"})
	req.ErrorIs(err, errors.ErrMetadataUnsupported)
	req.Empty(sink.Frames())
}

func Test_Sink_Accepts_Stripped_Retry(t *testing.T) {
	req := require.New(t)
	sink := NewSessionSink(slog.Default(), 4, false)

	req.NoError(sink.ReceiveDirectMessage("alice", "waves", nil))
	frame := <-sink.Frames()
	req.Equal(KindDirectMessage, frame.Kind)
	req.Equal("alice", frame.Sender)
	req.Equal("waves", frame.Message)
	req.Empty(frame.Metadata)
}

func Test_Sink_Keeps_Metadata_When_Supported(t *testing.T) {
	req := require.New(t)
	sink := NewSessionSink(slog.Default(), 4, true)

	req.NoError(sink.ReceiveDirectMessage("alice", "waves", domain.Metadata{"style": "emote"}))
	frame := <-sink.Frames()
	req.Equal(map[string]string{"style": "emote"}, frame.Metadata)
}

func Test_Sink_Translates_Statuses_To_Wire_Names(t *testing.T) {
	req := require.New(t)
	sink := NewSessionSink(slog.Default(), 4, true)

	req.NoError(sink.ReceiveContactList([]domain.ContactStatus{
		{Name: "bob", Status: domain.Online},
		{Name: "clara", Status: domain.Away},
	}))
	frame := <-sink.Frames()
	req.Equal(KindContactList, frame.Kind)
	req.Equal([]Contact{
		{Name: "bob", Status: "Online"},
		{Name: "clara", Status: "Away"},
	}, frame.Contacts)

	req.NoError(sink.NotifyStatusChanged("bob", domain.Offline))
	frame = <-sink.Frames()
	req.Equal(KindStatusChanged, frame.Kind)
	req.Equal("Offline", frame.Status)
}

func Test_Sink_Never_Blocks_When_Buffer_Is_Full(t *testing.T) {
	req := require.New(t)
	sink := NewSessionSink(slog.Default(), 1, true)

	req.NoError(sink.MemberJoined("bob", "lobby"))
	// Buffer is full now; further pushes drop instead of blocking.
	req.NoError(sink.MemberJoined("clara", "lobby"))
	req.NoError(sink.MemberLeft("clara", "lobby"))

	frame := <-sink.Frames()
	req.Equal(KindMemberJoined, frame.Kind)
	req.Equal("bob", frame.Name)
	req.Empty(sink.Frames())
}
