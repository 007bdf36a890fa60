package participant

import (
	"fmt"
	"io"
	"pattern-lab/contract"
	"pattern-lab/domain"

	"github.com/gookit/color"
)

var (
	nameStyle   = color.New(color.FgCyan, color.OpBold)
	senderStyle = color.New(color.FgMagenta)
)

// Coloured renders the recipient and the sender with terminal styles.
// With colours disabled the line is the same, minus the escape codes.
type Coloured struct {
	Colleague
	out     io.Writer
	colours bool
}

func NewColoured(name string, broker contract.IBroker, out io.Writer, colours bool) (*Coloured, error) {
	colleague, err := NewColleague(name, broker)
	if err != nil {
		return nil, err
	}
	return &Coloured{Colleague: colleague, out: out, colours: colours}, nil
}

func (p *Coloured) ReceiveMessage(msg domain.Message) {
	name, sender := p.name, msg.SenderName
	if p.colours {
		name = nameStyle.Render(name)
		sender = senderStyle.Render(sender)
	}
	_, _ = fmt.Fprintf(p.out, "%s received message from %s: %s\n", name, sender, msg.Content)
}

func (p *Coloured) SendMessage(content string) error {
	return p.Send(p, content)
}
