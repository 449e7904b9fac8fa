package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/djtokey/plugins/internal/timeouts"
)

// Frame is one websocket request. Exactly one of Object and Type names the
// target.
type Frame struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
	Type   string `json:"type,omitempty"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Reply answers the Frame with the same ID
type Reply struct {
	ID     string `json:"id"`
	Result []any  `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// resultReply always carries the result key, empty for void methods
type resultReply struct {
	ID     string `json:"id"`
	Result []any  `json:"result"`
}

var errNoTarget = errors.New("frame must name an object or a type")

// The bridge is meant for local scripting hosts, so any origin is accepted
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	s.log.Debug("Websocket connected", slog.String("remote", r.RemoteAddr))

	_ = conn.SetReadDeadline(time.Now().Add(timeouts.WebsocketPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(timeouts.WebsocketPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("Websocket read failed", slog.Any("error", err))
			}
			return
		}

		reply := s.handleFrame(r, data)

		_ = conn.SetWriteDeadline(time.Now().Add(timeouts.WebsocketWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			s.log.Debug("Websocket write failed", slog.Any("error", err))
			return
		}
	}
}

func (s *Server) handleFrame(r *http.Request, data []byte) any {
	var f Frame
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&f); err != nil {
		return Reply{Error: "invalid frame: " + err.Error()}
	}

	reply := Reply{ID: f.ID}

	args, err := stringArgs(f.Args)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	var result []any
	switch {
	case f.Object != "":
		result, err = s.invoke(r.Context(), f.Object, f.Method, args, s.reg.Invoke)
	case f.Type != "":
		result, err = s.invoke(r.Context(), f.Type, f.Method, args, s.reg.InvokeType)
	default:
		err = errNoTarget
	}

	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	if result == nil {
		result = []any{}
	}
	return resultReply{ID: f.ID, Result: result}
}

// keepAlive pings the peer until done is closed
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(timeouts.WebsocketPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(timeouts.WebsocketWriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
