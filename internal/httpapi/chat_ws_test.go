package httpapi

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lokai-in/lokai/internal/protocol"
)

func dialWS(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) (protocol.MessageType, []byte) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var env protocol.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope %q: %v", raw, err)
	}
	return env.Type, raw
}

func TestChatWS(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	conn := dialWS(t, srv, "/v1/chat/ws?session_id=ws-1")

	err := conn.WriteJSON(protocol.ClientMessage{
		Type:    protocol.TypeClientMessage,
		Message: "How do I file an RTI application?",
		City:    "Delhi",
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	var deltas []string
	for {
		typ, raw := readFrame(t, conn)
		switch typ {
		case protocol.TypeAssistantTextDelta:
			var d protocol.AssistantTextDelta
			if err := json.Unmarshal(raw, &d); err != nil {
				t.Fatalf("decode delta: %v", err)
			}
			deltas = append(deltas, d.TextDelta)
			continue
		case protocol.TypeAssistantReply:
			var reply protocol.AssistantReply
			if err := json.Unmarshal(raw, &reply); err != nil {
				t.Fatalf("decode reply: %v", err)
			}
			if reply.SessionID != "ws-1" {
				t.Errorf("session_id = %q, want ws-1", reply.SessionID)
			}
			if reply.Response == "" {
				t.Error("response is empty")
			}
			if len(deltas) == 0 {
				t.Error("no text deltas before final reply")
			}
			if strings.Join(deltas, "") != reply.Response {
				t.Errorf("deltas %q do not reassemble into response %q", strings.Join(deltas, ""), reply.Response)
			}
			if len(reply.Topics) == 0 || reply.Topics[0] != "RTI" {
				t.Errorf("topics = %v, want RTI first", reply.Topics)
			}
			return
		default:
			t.Fatalf("unexpected frame type %q: %s", typ, raw)
		}
	}
}

func TestChatWSInvalidFrame(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	conn := dialWS(t, srv, "/v1/chat/ws?session_id=ws-2")

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"bogus"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	typ, raw := readFrame(t, conn)
	if typ != protocol.TypeErrorEvent {
		t.Fatalf("frame type = %q, want error_event (%s)", typ, raw)
	}
	var ev protocol.ErrorEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("decode error event: %v", err)
	}
	if ev.Code != "invalid_message" {
		t.Errorf("code = %q, want invalid_message", ev.Code)
	}

	// The connection survives a bad frame.
	if err := conn.WriteJSON(protocol.ClientMessage{
		Type:    protocol.TypeClientMessage,
		Message: "hello",
	}); err != nil {
		t.Fatalf("write after error: %v", err)
	}
	for {
		typ, _ := readFrame(t, conn)
		if typ == protocol.TypeAssistantReply {
			return
		}
	}
}
