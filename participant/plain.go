package participant

import (
	"fmt"
	"io"
	"pattern-lab/contract"
	"pattern-lab/domain"
)

// Plain writes one line per received message.
type Plain struct {
	Colleague
	out io.Writer
}

func NewPlain(name string, broker contract.IBroker, out io.Writer) (*Plain, error) {
	colleague, err := NewColleague(name, broker)
	if err != nil {
		return nil, err
	}
	return &Plain{Colleague: colleague, out: out}, nil
}

func (p *Plain) ReceiveMessage(msg domain.Message) {
	_, _ = fmt.Fprintf(p.out, "%s received message: %s\n", p.name, msg.Content)
}

func (p *Plain) SendMessage(content string) error {
	return p.Send(p, content)
}
