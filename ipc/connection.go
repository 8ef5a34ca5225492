package ipc

import (
	"fmt"
	"io"
	"log/slog"
)

// Handler answers one envelope. A nil reply with a nil error sends nothing.
type Handler func(env Envelope) (*Envelope, error)

// Connection serves one orchestrator. Requests are answered one at a time, in
// the order they arrive, so replies never interleave.
type Connection struct {
	conn     io.ReadWriteCloser
	handlers map[string]Handler
	Peer     string
}

func NewConnection(conn io.ReadWriteCloser, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{conn: conn, handlers: handlers}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// Serve answers requests until the orchestrator hangs up or a reply cannot be
// written, then closes the connection. Every request that expects an answer
// gets one: failures come back as an error envelope.
func (c *Connection) Serve() {
	defer c.conn.Close()

	for {
		req, err := ReadEnvelope(c.conn)
		if err != nil {
			slog.Info("orchestrator disconnected", "peer", c.Peer, "error", err)
			return
		}

		reply := c.dispatch(req)
		if reply == nil {
			continue
		}
		if err := WriteEnvelope(c.conn, *reply); err != nil {
			slog.Error("reply failed", "peer", c.Peer, "request", req.Type, "reply", reply.Type, "error", err)
			return
		}
		slog.Debug("replied", "peer", c.Peer, "request", req.Type, "reply", reply.Type)
	}
}

func (c *Connection) dispatch(req Envelope) *Envelope {
	handler, ok := c.handlers[req.Type]
	if !ok {
		slog.Warn("unsupported request", "peer", c.Peer, "type", req.Type)
		return errorReply(req.Type, fmt.Errorf("unsupported message type %q", req.Type))
	}

	reply, err := handler(req)
	if err != nil {
		slog.Error("request failed", "peer", c.Peer, "type", req.Type, "error", err)
		return errorReply(req.Type, err)
	}
	return reply
}

func errorReply(reqType string, cause error) *Envelope {
	env, err := NewEnvelope(TypeError, ErrorMessage{Type: reqType, Error: cause.Error()})
	if err != nil {
		env = Envelope{Type: TypeError, Data: []byte(`{"error":"internal error"}`)}
	}
	return &env
}
