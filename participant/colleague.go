// Package participant holds the peers that talk to each other through a broker.
// Every variant embeds a Colleague and only differs by how it handles a received message.
package participant

import (
	"fmt"
	"pattern-lab/contract"
	"pattern-lab/domain"
	"pattern-lab/errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// Colleague carries what every participant shares: an identity and the broker.
// The broker is borrowed, never owned, and cannot change after construction.
type Colleague struct {
	id     uuid.UUID
	name   string
	broker contract.IBroker
}

func NewColleague(name string, broker contract.IBroker) (Colleague, error) {
	if err := validate.Var(name, "required,max=64"); err != nil {
		return Colleague{}, fmt.Errorf("%w: invalid participant name %q: %v", errors.ErrPreconditionViolation, name, err)
	}
	if lo.IsNil(broker) {
		return Colleague{}, fmt.Errorf("%w: participant %q has no broker", errors.ErrPreconditionViolation, name)
	}
	return Colleague{id: uuid.New(), name: name, broker: broker}, nil
}

func (c Colleague) ID() uuid.UUID { return c.id }

func (c Colleague) Name() string { return c.name }

// Send hands content to the broker on behalf of self, the variant embedding this Colleague.
// self must carry this Colleague's identity.
func (c Colleague) Send(self contract.Participant, content string) error {
	if lo.IsNil(c.broker) {
		return fmt.Errorf("%w: participant %q has no broker", errors.ErrPreconditionViolation, c.name)
	}
	if lo.IsNil(self) || self.ID() != c.id {
		return fmt.Errorf("%w: participant %q can only send on its own behalf", errors.ErrPreconditionViolation, c.name)
	}
	if strings.TrimSpace(content) == "" {
		return errors.ErrEmptyMessage
	}
	c.broker.Send(domain.NewMessage(c.id, c.name, content), self)
	return nil
}
