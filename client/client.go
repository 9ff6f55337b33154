// Package client is a small WebSocket client for the directory gateway. It
// is used by the end-to-end scenarios and works as a building block for
// command-line frontends.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"presence-lab/infrastructure/ws"
	"presence-lab/sink"
)

// Client speaks the gateway's JSON protocol over one WebSocket connection.
// Commands are sent from the calling goroutine; a background reader feeds
// every inbound frame into a buffered channel drained with Next or Expect.
type Client struct {
	log    *slog.Logger
	conn   *websocket.Conn
	frames chan sink.Frame
	done   chan struct{}
}

func Dial(ctx context.Context, url string, log *slog.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing gateway at %s: %w", url, err)
	}
	c := &Client{
		log:    log,
		conn:   conn,
		frames: make(chan sink.Frame, 64),
		done:   make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		var frame sink.Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			c.log.Debug("reader stopped", "err", err)
			return
		}
		select {
		case c.frames <- frame:
		default:
			c.log.Warn("inbound buffer full, dropping frame", "kind", frame.Kind)
		}
	}
}

func (c *Client) send(op string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(ws.Envelope{Op: op, Payload: raw})
}

// Next returns the next inbound frame or fails when the context expires or
// the connection dies.
func (c *Client) Next(ctx context.Context) (sink.Frame, error) {
	select {
	case <-ctx.Done():
		return sink.Frame{}, ctx.Err()
	case <-c.done:
		return sink.Frame{}, fmt.Errorf("connection closed")
	case frame := <-c.frames:
		return frame, nil
	}
}

// Expect consumes frames until one of the wanted kind arrives. An error
// frame received while waiting fails immediately; unrelated notification
// frames are skipped.
func (c *Client) Expect(ctx context.Context, kind string) (sink.Frame, error) {
	for {
		frame, err := c.Next(ctx)
		if err != nil {
			return sink.Frame{}, err
		}
		if frame.Kind == kind {
			return frame, nil
		}
		if frame.Kind == sink.KindError && frame.Error != nil {
			return frame, fmt.Errorf("gateway error %s: %s", frame.Error.Code, frame.Error.Detail)
		}
		c.log.Debug("skipping frame", "kind", frame.Kind, "wanted", kind)
	}
}

// Register creates an account and waits for the acknowledgement.
func (c *Client) Register(ctx context.Context, name, password string) error {
	if err := c.send(ws.OpRegister, ws.RegisterPayload{Name: name, Password: password}); err != nil {
		return err
	}
	_, err := c.Expect(ctx, sink.KindRegistered)
	return err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, name, password string) (string, error) {
	if err := c.send(ws.OpLogin, ws.LoginPayload{Name: name, Password: password}); err != nil {
		return "", err
	}
	frame, err := c.Expect(ctx, sink.KindLoggedIn)
	if err != nil {
		return "", err
	}
	return frame.Token, nil
}

// Attach binds the connection to the participant the token was issued for.
func (c *Client) Attach(ctx context.Context, token string, supportsMetadata bool) error {
	if err := c.send(ws.OpAttach, ws.AttachPayload{Token: token, SupportsMetadata: supportsMetadata}); err != nil {
		return err
	}
	_, err := c.Expect(ctx, sink.KindOK)
	return err
}

func (c *Client) ChangeStatus(status string) error {
	return c.send(ws.OpChangeStatus, ws.ChangeStatusPayload{Status: status})
}

func (c *Client) AddContact(contact string) error {
	return c.send(ws.OpAddContact, ws.ContactPayload{Contact: contact})
}

func (c *Client) RemoveContact(contact string) error {
	return c.send(ws.OpRemoveContact, ws.ContactPayload{Contact: contact})
}

func (c *Client) JoinGroup(group string) error {
	return c.send(ws.OpJoinGroup, ws.GroupPayload{Group: group})
}

func (c *Client) LeaveGroup(group string) error {
	return c.send(ws.OpLeaveGroup, ws.GroupPayload{Group: group})
}

func (c *Client) GroupMembers(group string) error {
	return c.send(ws.OpGroupMembers, ws.GroupPayload{Group: group})
}

func (c *Client) GroupMetadata(group string) error {
	return c.send(ws.OpGroupMetadata, ws.GroupPayload{Group: group})
}

func (c *Client) SetGroupMetadata(group string, metadata map[string]string) error {
	return c.send(ws.OpSetGroupMetadata, ws.SetGroupMetadataPayload{Group: group, Metadata: metadata})
}

func (c *Client) UpdateInfo(info string) error {
	return c.send(ws.OpUpdateInfo, ws.UpdateInfoPayload{Info: info})
}

func (c *Client) DirectMessage(recipient, message string, metadata map[string]string) error {
	return c.send(ws.OpDirectMessage, ws.DirectMessagePayload{
		Recipient: recipient, Message: message, Metadata: metadata,
	})
}

func (c *Client) GroupMessage(group, message string, metadata map[string]string) error {
	return c.send(ws.OpGroupMessage, ws.GroupMessagePayload{
		Group: group, Message: message, Metadata: metadata,
	})
}
