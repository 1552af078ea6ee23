package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/editor"
	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/position"
	"github.com/SachinthaLakshan/evite-new-edition/render"
	"github.com/SachinthaLakshan/evite-new-edition/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is the envelope of both directions. Client messages are
// bounds, pointer, key, update, reset and guest; the server sends config
// snapshots, errors and closed.
type wsMessage struct {
	Type string `json:"type"`

	Bounds   *editor.Rect    `json:"bounds,omitempty"`
	Pointer  *editor.Pointer `json:"pointer,omitempty"`
	Slot     position.Slot   `json:"slot,omitempty"`
	Key      editor.Key      `json:"key,omitempty"`
	Modifier bool            `json:"modifier,omitempty"`
	Update   json.RawMessage `json:"update,omitempty"`
	Guest    *string         `json:"guest,omitempty"`

	Config  *invitation.Config `json:"config,omitempty"`
	Preview string             `json:"preview,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func snapshot(s *session.Session, cfg invitation.Config) (wsMessage, error) {
	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, s.Preview()); err != nil {
		return wsMessage{}, err
	}
	return wsMessage{Type: "config", Config: &cfg, Preview: buf.String()}, nil
}

func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, ok := h.manager.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	log := h.log.With(zap.String("session_id", id))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// gorilla/websocket forbids concurrent writes.
	var writeMu sync.Mutex
	writeMsg := func(msg wsMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}
	sendSnapshot := func(cfg invitation.Config) error {
		msg, err := snapshot(s, cfg)
		if err != nil {
			log.Warn("preview render failed", zap.Error(err))
			return err
		}
		return writeMsg(msg)
	}

	outChan := make(chan invitation.Config, 1)
	kick := s.SetClient(outChan) // kicks any prior client
	defer s.ClearClient(outChan) // closes outChan; clears session state if still owner

	if err := sendSnapshot(s.Config()); err != nil {
		return
	}

	// Pump configuration changes to the client. Exits when ClearClient
	// closes outChan.
	go func() {
		for cfg := range outChan {
			if err := sendSnapshot(cfg); err != nil {
				return
			}
		}
	}()

	// Close the connection on session end or displacement so ReadJSON
	// below unblocks.
	connDone := make(chan struct{})
	go func() {
		select {
		case <-s.Done():
			writeMsg(wsMessage{Type: "closed"}) //nolint:errcheck
			conn.Close()
		case <-kick:
			// Displaced by a newer connection. No "closed" message: the
			// session is still open.
			conn.Close()
		case <-connDone:
		}
	}()
	defer close(connDone)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "bounds":
			if msg.Bounds != nil {
				s.SetBounds(*msg.Bounds)
			}
		case "pointer":
			if msg.Pointer != nil {
				s.Pointer(*msg.Pointer)
			}
		case "key":
			s.Key(msg.Slot, msg.Key, msg.Modifier)
		case "update":
			u, err := invitation.DecodeUpdate(msg.Update)
			if err != nil {
				writeMsg(wsMessage{Type: "error", Error: err.Error()}) //nolint:errcheck
				continue
			}
			s.Apply(u)
		case "reset":
			s.Reset()
		case "guest":
			if msg.Guest != nil {
				s.SetGuestName(*msg.Guest)
				// The guest changes the preview but not the configuration.
				if err := sendSnapshot(s.Config()); err != nil {
					return
				}
			}
		}
	}
}
