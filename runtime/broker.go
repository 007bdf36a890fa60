package runtime

import (
	"fmt"
	"log/slog"
	"pattern-lab/contract"
	"pattern-lab/domain"
	"pattern-lab/errors"

	"github.com/samber/lo"
)

// Broker routes every message to all registered participants except its sender.
//
// The registry keeps insertion order, so delivery order is deterministic.
// Duplicates are kept as-is: a participant registered twice receives each
// broadcast twice. Nothing is ever unregistered.
//
// Broker is not safe for concurrent use; Send runs every recipient callback
// synchronously on the caller's goroutine.
type Broker struct {
	log          *slog.Logger
	participants []contract.Participant
}

// NewBroker falls back to a discarding logger when log is nil.
func NewBroker(log *slog.Logger) *Broker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Broker{log: log}
}

// Register appends a participant to the registry.
func (b *Broker) Register(participant contract.Participant) error {
	if lo.IsNil(participant) {
		return fmt.Errorf("%w: cannot register a nil participant", errors.ErrPreconditionViolation)
	}
	b.participants = append(b.participants, participant)
	b.log.Debug("Participant registered",
		"participant", participant.Name(),
		"id", participant.ID(),
		"registered", len(b.participants))
	return nil
}

// Send delivers msg to every registered participant whose identity differs from sender.
// A sender missing from the registry, or a nil sender, does not prevent delivery.
func (b *Broker) Send(msg domain.Message, sender contract.Participant) {
	recipients := b.recipients(sender)
	b.log.Debug("Broadcasting message",
		"message", msg.ID,
		"sender", msg.SenderName,
		"recipients", len(recipients))

	for _, participant := range recipients {
		participant.ReceiveMessage(msg)
	}
}

// Participants returns a copy of the registry in delivery order.
func (b *Broker) Participants() []contract.Participant {
	return append([]contract.Participant(nil), b.participants...)
}

// recipients is computed before any callback runs, so participants
// registered while a broadcast is in flight only see later ones.
func (b *Broker) recipients(sender contract.Participant) []contract.Participant {
	if lo.IsNil(sender) {
		return b.Participants()
	}
	senderID := sender.ID()
	return lo.Filter(b.participants, func(p contract.Participant, _ int) bool {
		return p.ID() != senderID
	})
}
