package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lokai-in/lokai/internal/memory"
	"github.com/lokai-in/lokai/internal/protocol"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsReadLimit    = 64 * 1024
)

// handleChatWS streams assistant replies over a websocket. Frames are
// processed one at a time per connection, so the connection itself is the
// single writer and no fan-in goroutine is needed.
func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		sessionID = newSessionID()
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("chat ws: session %s read error: %v", sessionID, err)
			}
			return
		}

		msg, err := protocol.ParseClientMessage(raw)
		if err != nil {
			s.writeWS(conn, protocol.ErrorEvent{
				Type:      protocol.TypeErrorEvent,
				SessionID: sessionID,
				Code:      "invalid_message",
				Detail:    err.Error(),
			})
			continue
		}
		if msg.SessionID != "" {
			sessionID = msg.SessionID
		}

		patch := memory.ContextPatch{
			City:            msg.City,
			Language:        msg.Language,
			DocumentContext: msg.Context,
		}

		result, err := s.orchestrator.ProcessQueryStream(r.Context(), msg.Message, sessionID, patch, func(delta string) error {
			return s.writeWS(conn, protocol.AssistantTextDelta{
				Type:      protocol.TypeAssistantTextDelta,
				SessionID: sessionID,
				TextDelta: delta,
			})
		})
		if err != nil {
			s.writeWS(conn, protocol.ErrorEvent{
				Type:      protocol.TypeErrorEvent,
				SessionID: sessionID,
				Code:      "chat_failed",
				Detail:    "failed to get response from assistant",
			})
			continue
		}

		if err := s.writeWS(conn, protocol.AssistantReply{
			Type:         protocol.TypeAssistantReply,
			SessionID:    sessionID,
			Response:     result.Response,
			Topics:       result.Topics,
			RelevantLaws: result.RelevantLaws,
			Suggestions:  result.Suggestions,
		}); err != nil {
			return
		}
	}
}

func (s *Server) writeWS(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	if err := conn.WriteJSON(v); err != nil {
		if !errors.Is(err, websocket.ErrCloseSent) {
			log.Printf("chat ws: write failed: %v", err)
		}
		return err
	}
	return nil
}
