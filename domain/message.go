// Package domain contains the values exchanged by the broker and walked by cursors.
// Messages are immutable once built by a participant.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable broadcast.
type Message struct {
	ID         uuid.UUID // unique identifier
	SenderID   uuid.UUID
	SenderName string
	Content    string
	CreatedAt  time.Time
}

func NewMessage(senderID uuid.UUID, senderName, content string) Message {
	return Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
}
