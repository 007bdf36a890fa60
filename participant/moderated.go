package participant

import (
	"fmt"
	"io"
	"pattern-lab/contract"
	"pattern-lab/domain"
	"pattern-lab/errors"

	"github.com/samber/lo"
)

type Censor interface {
	Censor(text string) string
}

// Moderated hides forbidden words of every message it receives before rendering it.
// The broadcast itself is untouched, other recipients still see the original content.
type Moderated struct {
	Colleague
	out    io.Writer
	censor Censor
}

func NewModerated(name string, broker contract.IBroker, out io.Writer, censor Censor) (*Moderated, error) {
	if lo.IsNil(censor) {
		return nil, fmt.Errorf("%w: participant %q has no censor", errors.ErrPreconditionViolation, name)
	}
	colleague, err := NewColleague(name, broker)
	if err != nil {
		return nil, err
	}
	return &Moderated{Colleague: colleague, out: out, censor: censor}, nil
}

func (p *Moderated) ReceiveMessage(msg domain.Message) {
	_, _ = fmt.Fprintf(p.out, "%s received message: %s\n", p.name, p.censor.Censor(msg.Content))
}

func (p *Moderated) SendMessage(content string) error {
	return p.Send(p, content)
}
