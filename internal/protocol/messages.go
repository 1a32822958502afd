// Package protocol defines the websocket payloads for streaming chat.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType identifies websocket payload variants.
type MessageType string

const (
	TypeClientMessage      MessageType = "client_message"
	TypeAssistantTextDelta MessageType = "assistant_text_delta"
	TypeAssistantReply     MessageType = "assistant_reply"
	TypeErrorEvent         MessageType = "error_event"
)

var ErrUnsupportedType = errors.New("unsupported message type")

type Envelope struct {
	Type MessageType `json:"type"`
}

// ClientMessage is one user chat message with optional context fields.
type ClientMessage struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Message   string      `json:"message"`
	City      string      `json:"city,omitempty"`
	Language  string      `json:"language,omitempty"`
	Context   any         `json:"context,omitempty"`
}

// AssistantTextDelta streams one completion fragment.
type AssistantTextDelta struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	TextDelta string      `json:"text_delta"`
}

// AssistantReply carries the final structured result for one query.
type AssistantReply struct {
	Type         MessageType `json:"type"`
	SessionID    string      `json:"session_id"`
	Response     string      `json:"response"`
	Topics       []string    `json:"topics"`
	RelevantLaws []string    `json:"relevant_laws"`
	Suggestions  []string    `json:"suggestions"`
}

type ErrorEvent struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Code      string      `json:"code"`
	Detail    string      `json:"detail"`
}

// ParseClientMessage decodes and validates one inbound frame.
func ParseClientMessage(raw []byte) (ClientMessage, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ClientMessage{}, fmt.Errorf("invalid envelope: %w", err)
	}
	if env.Type != TypeClientMessage {
		return ClientMessage{}, ErrUnsupportedType
	}

	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ClientMessage{}, err
	}
	if msg.Message == "" {
		return ClientMessage{}, errors.New("invalid client_message: message is required")
	}
	return msg, nil
}
