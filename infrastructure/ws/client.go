package ws

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/gorilla/websocket"

	"presence-lab/domain"
	"presence-lab/errors"
	"presence-lab/observability"
	"presence-lab/sink"
)

// Client is one WebSocket connection. Before a successful attach it can only
// register, login, and attach; afterwards it speaks for exactly one
// participant until the socket closes.
type Client struct {
	id    string
	log   *slog.Logger
	conn  *websocket.Conn
	stats *observability.GatewayStats

	out chan sink.Frame

	participant *domain.Participant
	session     *sink.SessionSink
}

// enqueue hands a frame to the write pump without ever blocking the caller.
func (c *Client) enqueue(f sink.Frame) {
	select {
	case c.out <- f:
	default:
		c.stats.IncrFramesDropped()
		c.log.Warn("outbound buffer full, dropping frame", "client", c.id, "kind", f.Kind)
	}
}

func (c *Client) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-c.out:
			if err := c.conn.WriteJSON(f); err != nil {
				c.log.Debug("write failed", "client", c.id, "err", err)
				return
			}
			c.stats.IncrFramesSent()
		}
	}
}

// forwardSink drains the attached session sink into the outbound channel for
// the lifetime of the connection.
func (c *Client) forwardSink(ctx context.Context, s *sink.SessionSink) {
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-s.Frames():
			c.enqueue(f)
		}
	}
}

func parseStatus(s string) domain.Status {
	switch s {
	case "online":
		return domain.Online
	case "away":
		return domain.Away
	default:
		return domain.Offline
	}
}

// toWireError translates the error taxonomy into the structured form peers
// render locally.
func toWireError(err error) *sink.WireError {
	var notInGroup errors.NotInGroupError
	if stderrors.As(err, &notInGroup) {
		return &sink.WireError{Code: "not_in_group", Group: notInGroup.Group, Participant: notInGroup.Participant, Detail: err.Error()}
	}
	var notInCollection errors.NotInCollectionError
	if stderrors.As(err, &notInCollection) {
		return &sink.WireError{Code: "not_in_collection", Participant: notInCollection.Contact, Detail: err.Error()}
	}
	var nonexistant errors.UserNonexistantError
	if stderrors.As(err, &nonexistant) {
		return &sink.WireError{Code: "user_nonexistant", Participant: nonexistant.Name, Detail: err.Error()}
	}
	var wrongStatus errors.WrongStatusError
	if stderrors.As(err, &wrongStatus) {
		return &sink.WireError{Code: "wrong_status", Participant: wrongStatus.Name, Status: wrongStatus.Status, Detail: err.Error()}
	}
	var unauthorized errors.AuthorizationError
	if stderrors.As(err, &unauthorized) {
		return &sink.WireError{Code: "unauthorized", Detail: err.Error()}
	}
	switch {
	case stderrors.Is(err, errors.ErrBadCredentials),
		stderrors.Is(err, errors.ErrDuplicateLogin):
		return &sink.WireError{Code: "unauthorized", Detail: err.Error()}
	case stderrors.Is(err, errors.ErrAccountExists):
		return &sink.WireError{Code: "account_exists", Detail: err.Error()}
	case stderrors.Is(err, errors.ErrSessionNotAttached):
		return &sink.WireError{Code: "not_attached", Detail: err.Error()}
	}
	return &sink.WireError{Code: "internal", Detail: err.Error()}
}
