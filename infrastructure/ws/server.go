// Package ws is the WebSocket gateway in front of the directory. It
// translates JSON command frames into session-service calls and streams
// notification frames back. The directory core never sees a socket.
package ws

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"presence-lab/errors"
	"presence-lab/observability"
	"presence-lab/services"
	"presence-lab/sink"
)

type handlerFunc func(ctx context.Context, c *Client, raw json.RawMessage) error

type Server struct {
	log        *slog.Logger
	service    services.ISessionService
	validate   *validator.Validate
	upgrader   websocket.Upgrader
	handlers   map[string]handlerFunc
	stats      *observability.GatewayStats
	addr       string
	bufferSize int
}

func NewServer(log *slog.Logger, service services.ISessionService, stats *observability.GatewayStats, addr string, bufferSize int) *Server {
	s := &Server{
		log:        log,
		service:    service,
		validate:   validator.New(),
		upgrader:   websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
		stats:      stats,
		addr:       addr,
		bufferSize: bufferSize,
	}
	s.handlers = map[string]handlerFunc{
		OpRegister:         s.handleRegister,
		OpLogin:            s.handleLogin,
		OpAttach:           s.handleAttach,
		OpChangeStatus:     s.handleChangeStatus,
		OpAddContact:       s.handleAddContact,
		OpRemoveContact:    s.handleRemoveContact,
		OpJoinGroup:        s.handleJoinGroup,
		OpLeaveGroup:       s.handleLeaveGroup,
		OpGroupMembers:     s.handleGroupMembers,
		OpGroupMetadata:    s.handleGroupMetadata,
		OpSetGroupMetadata: s.handleSetGroupMetadata,
		OpUpdateInfo:       s.handleUpdateInfo,
		OpDirectMessage:    s.handleDirectMessage,
		OpGroupMessage:     s.handleGroupMessage,
	}
	return s
}

// Handler exposes the gateway endpoints for embedding in another server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Run serves until the context is canceled; it satisfies contract.Worker so
// the gateway lives under the supervisor like any other long-running part.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gateway listening", "addr", s.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}
	s.stats.IncrConnectionsOpened()
	client := &Client{
		id:    uuid.NewString(),
		log:   s.log,
		conn:  conn,
		out:   make(chan sink.Frame, s.bufferSize),
		stats: s.stats,
	}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go client.writePump(ctx)
	s.readPump(ctx, client)
}

// readPump is the per-connection command loop. Whatever ends it, an attached
// participant is detached so its watchers see it go offline.
func (s *Server) readPump(ctx context.Context, c *Client) {
	defer func() {
		if c.participant != nil {
			s.service.Detach(c.participant)
		}
		_ = c.conn.Close()
		s.stats.IncrConnectionsClosed()
	}()

	for {
		var envelope Envelope
		if err := c.conn.ReadJSON(&envelope); err != nil {
			s.log.Debug("connection closed", "client", c.id, "err", err)
			return
		}
		s.stats.IncrCommandsReceived()
		handler, ok := s.handlers[envelope.Op]
		if !ok {
			c.enqueue(sink.Frame{Kind: sink.KindError, Error: &sink.WireError{
				Code: "unknown_op", Detail: fmt.Sprintf("unknown operation %q", envelope.Op),
			}})
			continue
		}
		if err := handler(ctx, c, envelope.Payload); err != nil {
			var invalid validator.ValidationErrors
			if stderrors.As(err, &invalid) || isDecodeError(err) {
				c.enqueue(sink.Frame{Kind: sink.KindError, Error: &sink.WireError{Code: "bad_request", Detail: err.Error()}})
				continue
			}
			c.enqueue(sink.Frame{Kind: sink.KindError, Error: toWireError(err)})
		}
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr)
}

func decode[T any](v *validator.Validate, raw json.RawMessage, payload *T) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, payload); err != nil {
			return err
		}
	}
	return v.Struct(payload)
}

func (s *Server) requireAttached(c *Client) error {
	if c.participant == nil {
		return errors.ErrSessionNotAttached
	}
	return nil
}

func (s *Server) handleRegister(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload RegisterPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.service.Register(payload.Name, payload.Password); err != nil {
		return err
	}
	c.enqueue(sink.Frame{Kind: sink.KindRegistered, Name: payload.Name})
	return nil
}

func (s *Server) handleLogin(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload LoginPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	token, err := s.service.Login(payload.Name, payload.Password)
	if err != nil {
		return err
	}
	c.enqueue(sink.Frame{Kind: sink.KindLoggedIn, Name: payload.Name, Token: token})
	return nil
}

func (s *Server) handleAttach(ctx context.Context, c *Client, raw json.RawMessage) error {
	var payload AttachPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if c.participant != nil {
		return errors.AuthorizationError{Reason: "session already attached"}
	}
	session := sink.NewSessionSink(s.log, s.bufferSize, payload.SupportsMetadata)
	participant, err := s.service.Attach(payload.Token, session)
	if err != nil {
		return err
	}
	c.participant = participant
	c.session = session
	go c.forwardSink(ctx, session)
	c.enqueue(sink.Frame{Kind: sink.KindOK, Name: participant.Name()})
	return nil
}

func (s *Server) handleChangeStatus(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload ChangeStatusPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	s.service.ChangeStatus(c.participant, parseStatus(payload.Status))
	return nil
}

func (s *Server) handleAddContact(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload ContactPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.AddContact(c.participant, payload.Contact)
}

func (s *Server) handleRemoveContact(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload ContactPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.RemoveContact(c.participant, payload.Contact)
}

func (s *Server) handleJoinGroup(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload GroupPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.JoinGroup(c.participant, payload.Group)
}

func (s *Server) handleLeaveGroup(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload GroupPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.LeaveGroup(c.participant, payload.Group)
}

func (s *Server) handleGroupMembers(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload GroupPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.GroupMembers(c.participant, payload.Group)
}

func (s *Server) handleGroupMetadata(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload GroupPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	s.service.GroupMetadata(c.participant, payload.Group)
	return nil
}

func (s *Server) handleSetGroupMetadata(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload SetGroupMetadataPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	s.service.SetGroupMetadata(payload.Group, payload.Metadata)
	return nil
}

func (s *Server) handleUpdateInfo(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload UpdateInfoPayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.UpdateInfo(c.participant, payload.Info)
}

func (s *Server) handleDirectMessage(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload DirectMessagePayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.DirectMessage(c.participant, payload.Recipient, payload.Message, payload.Metadata)
}

func (s *Server) handleGroupMessage(_ context.Context, c *Client, raw json.RawMessage) error {
	var payload GroupMessagePayload
	if err := decode(s.validate, raw, &payload); err != nil {
		return err
	}
	if err := s.requireAttached(c); err != nil {
		return err
	}
	return s.service.GroupMessage(c.participant, payload.Group, payload.Message, payload.Metadata)
}
