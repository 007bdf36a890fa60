// Package projection builds local timelines from observed broadcasts.
// A Timeline is a participant that only records; it never renders nor re-broadcasts.
package projection

import (
	"pattern-lab/contract"
	"pattern-lab/domain"
	"pattern-lab/participant"
)

// Timeline holds a simple local timeline
type Timeline struct {
	participant.Colleague
	Messages []domain.Message
}

func NewTimeline(owner string, broker contract.IBroker) (*Timeline, error) {
	colleague, err := participant.NewColleague(owner, broker)
	if err != nil {
		return nil, err
	}
	return &Timeline{Colleague: colleague}, nil
}

func (t *Timeline) ReceiveMessage(msg domain.Message) {
	t.Messages = append(t.Messages, msg)
}

func (t *Timeline) SendMessage(content string) error {
	return t.Send(t, content)
}

// Contents lists the received contents in arrival order.
func (t *Timeline) Contents() []string {
	contents := make([]string, 0, len(t.Messages))
	for _, msg := range t.Messages {
		contents = append(contents, msg.Content)
	}
	return contents
}
