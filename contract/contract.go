//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"pattern-lab/domain"

	"github.com/google/uuid"
)

// Participant talks to its peers only through the broker it was built with.
// ReceiveMessage must never re-broadcast on its own.
type Participant interface {
	ID() uuid.UUID
	Name() string
	ReceiveMessage(msg domain.Message)
	SendMessage(content string) error
}

type IBroker interface {
	Register(participant Participant) error
	Send(msg domain.Message, sender Participant)
}

// Aggregate is any ordered, 0-indexed container a cursor can walk.
type Aggregate[T any] interface {
	Count() int
	ItemAt(index int) (T, error)
}
