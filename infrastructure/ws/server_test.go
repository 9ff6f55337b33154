package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"presence-lab/domain"
	"presence-lab/errors"
	"presence-lab/mocks"
	"presence-lab/observability"
	"presence-lab/sink"
)

func newTestServer(ctrl *gomock.Controller) (*Server, *mocks.MockISessionService) {
	service := mocks.NewMockISessionService(ctrl)
	stats := observability.NewGatewayStats(slog.Default())
	return NewServer(slog.Default(), service, stats, "127.0.0.1:0", 16), service
}

func newTestClient() *Client {
	return &Client{
		id:    "test",
		log:   slog.Default(),
		stats: observability.NewGatewayStats(slog.Default()),
		out:   make(chan sink.Frame, 16),
	}
}

func payload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func Test_Register_Handler_Replies_Registered(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, service := newTestServer(ctrl)
	client := newTestClient()

	service.EXPECT().Register("alice", "correct horse").Return(nil)
	raw := payload(t, RegisterPayload{Name: "alice", Password: "correct horse"})
	req.NoError(server.handleRegister(context.Background(), client, raw))

	frame := <-client.out
	req.Equal(sink.KindRegistered, frame.Kind)
	req.Equal("alice", frame.Name)
}

func Test_Register_Handler_Validates_Payload(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(ctrl)
	client := newTestClient()

	// Password below the minimum length never reaches the service.
	raw := payload(t, RegisterPayload{Name: "alice", Password: "short"})
	err := server.handleRegister(context.Background(), client, raw)
	var invalid validator.ValidationErrors
	req.ErrorAs(err, &invalid)
}

func Test_Login_Handler_Replies_With_Token(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, service := newTestServer(ctrl)
	client := newTestClient()

	service.EXPECT().Login("alice", "correct horse").Return("signed-token", nil)
	raw := payload(t, LoginPayload{Name: "alice", Password: "correct horse"})
	req.NoError(server.handleLogin(context.Background(), client, raw))

	frame := <-client.out
	req.Equal(sink.KindLoggedIn, frame.Kind)
	req.Equal("signed-token", frame.Token)
}

func Test_Attach_Handler_Binds_Participant(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, service := newTestServer(ctrl)
	client := newTestClient()

	directory := domain.NewDirectory(slog.Default())
	alice, _ := directory.CreateParticipant("alice")
	service.EXPECT().Attach("token", gomock.Any()).Return(alice, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	raw := payload(t, AttachPayload{Token: "token", SupportsMetadata: true})
	req.NoError(server.handleAttach(ctx, client, raw))

	req.Same(alice, client.participant)
	req.NotNil(client.session)
	frame := <-client.out
	req.Equal(sink.KindOK, frame.Kind)
	req.Equal("alice", frame.Name)
}

func Test_Attach_Handler_Refuses_Second_Attach(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(ctrl)
	client := newTestClient()

	directory := domain.NewDirectory(slog.Default())
	client.participant, _ = directory.CreateParticipant("alice")

	raw := payload(t, AttachPayload{Token: "token"})
	err := server.handleAttach(context.Background(), client, raw)
	var authErr errors.AuthorizationError
	req.ErrorAs(err, &authErr)
}

func Test_Participant_Ops_Require_Attach(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(ctrl)
	client := newTestClient()

	raw := payload(t, DirectMessagePayload{Recipient: "bob", Message: "hi"})
	req.ErrorIs(server.handleDirectMessage(context.Background(), client, raw), errors.ErrSessionNotAttached)

	raw = payload(t, GroupPayload{Group: "lobby"})
	req.ErrorIs(server.handleJoinGroup(context.Background(), client, raw), errors.ErrSessionNotAttached)

	raw = payload(t, ChangeStatusPayload{Status: "away"})
	req.ErrorIs(server.handleChangeStatus(context.Background(), client, raw), errors.ErrSessionNotAttached)
}

func Test_DirectMessage_Handler_Forwards_Metadata(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, service := newTestServer(ctrl)
	client := newTestClient()

	directory := domain.NewDirectory(slog.Default())
	client.participant, _ = directory.CreateParticipant("alice")

	service.EXPECT().
		DirectMessage(client.participant, "bob", "waves", domain.Metadata{"style": "emote"}).
		Return(nil)
	raw := payload(t, DirectMessagePayload{
		Recipient: "bob", Message: "waves", Metadata: map[string]string{"style": "emote"},
	})
	req.NoError(server.handleDirectMessage(context.Background(), client, raw))
}

func Test_ChangeStatus_Handler_Rejects_Unknown_Status(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(ctrl)
	client := newTestClient()

	raw := payload(t, ChangeStatusPayload{Status: "lurking"})
	err := server.handleChangeStatus(context.Background(), client, raw)
	var invalid validator.ValidationErrors
	req.ErrorAs(err, &invalid)
}

func Test_ParseStatus(t *testing.T) {
	req := require.New(t)
	req.Equal(domain.Online, parseStatus("online"))
	req.Equal(domain.Away, parseStatus("away"))
	req.Equal(domain.Offline, parseStatus("offline"))
}

func Test_ToWireError_Maps_The_Taxonomy(t *testing.T) {
	req := require.New(t)

	wire := toWireError(errors.NotInGroupError{Group: "lobby", Participant: "bob"})
	req.Equal("not_in_group", wire.Code)
	req.Equal("lobby", wire.Group)
	req.Equal("bob", wire.Participant)

	wire = toWireError(errors.NotInCollectionError{Contact: "bob"})
	req.Equal("not_in_collection", wire.Code)

	wire = toWireError(errors.UserNonexistantError{Name: "ghost"})
	req.Equal("user_nonexistant", wire.Code)
	req.Equal("ghost", wire.Participant)

	wire = toWireError(errors.WrongStatusError{Status: "Offline", Name: "bob"})
	req.Equal("wrong_status", wire.Code)
	req.Equal("Offline", wire.Status)

	wire = toWireError(errors.AuthorizationError{Reason: "duplicate login not permitted"})
	req.Equal("unauthorized", wire.Code)

	req.Equal("unauthorized", toWireError(errors.ErrBadCredentials).Code)
	req.Equal("account_exists", toWireError(errors.ErrAccountExists).Code)
	req.Equal("not_attached", toWireError(errors.ErrSessionNotAttached).Code)
	req.Equal("internal", toWireError(context.DeadlineExceeded).Code)
}

func Test_Gateway_Replies_Error_Frame_For_Unknown_Op(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(ctrl)

	ts := httptest.NewServer(http.HandlerFunc(server.serveWS))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	req.NoError(err)
	defer conn.Close()

	req.NoError(conn.WriteJSON(Envelope{Op: "teleport"}))

	var frame sink.Frame
	req.NoError(conn.ReadJSON(&frame))
	req.Equal(sink.KindError, frame.Kind)
	req.NotNil(frame.Error)
	req.Equal("unknown_op", frame.Error.Code)
}

func Test_Gateway_Replies_Bad_Request_For_Invalid_Payload(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(ctrl)

	ts := httptest.NewServer(http.HandlerFunc(server.serveWS))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	req.NoError(err)
	defer conn.Close()

	req.NoError(conn.WriteJSON(Envelope{Op: OpLogin, Payload: json.RawMessage(`{"name":"alice"}`)}))

	var frame sink.Frame
	req.NoError(conn.ReadJSON(&frame))
	req.Equal(sink.KindError, frame.Kind)
	req.NotNil(frame.Error)
	req.Equal("bad_request", frame.Error.Code)
}
