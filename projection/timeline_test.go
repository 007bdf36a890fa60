package projection

import (
	"log/slog"
	"pattern-lab/errors"
	"pattern-lab/runtime"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Records_Broadcasts_From_Peers(t *testing.T) {
	req := require.New(t)
	broker := runtime.NewBroker(logs.GetLoggerFromLevel(slog.LevelDebug))

	alice, err := NewTimeline("Alice", broker)
	req.NoError(err)
	bob, err := NewTimeline("Bob", broker)
	req.NoError(err)
	clara, err := NewTimeline("Clara", broker)
	req.NoError(err)
	for _, p := range []*Timeline{alice, bob, clara} {
		req.NoError(broker.Register(p))
	}

	// When Alice then Clara speak
	req.NoError(alice.SendMessage("Hello Bob"))
	req.NoError(clara.SendMessage("Hi Bob"))

	// Then Bob saw both, in order
	req.Equal([]string{"Hello Bob", "Hi Bob"}, bob.Contents())
	req.Equal(alice.ID(), bob.Messages[0].SenderID)
	req.Equal("Clara", bob.Messages[1].SenderName)

	// And nobody saw their own message
	req.Equal([]string{"Hi Bob"}, alice.Contents())
	req.Equal([]string{"Hello Bob"}, clara.Contents())
}

func TestTimeline_Without_Broker(t *testing.T) {
	_, err := NewTimeline("Alice", nil)
	require.ErrorIs(t, err, errors.ErrPreconditionViolation)
}

func TestTimeline_Zero_Value_Cannot_Send(t *testing.T) {
	var timeline Timeline
	require.ErrorIs(t, timeline.SendMessage("hello"), errors.ErrPreconditionViolation)
}

func TestTimeline_Colleague_Cannot_Send_As_Another_Peer(t *testing.T) {
	req := require.New(t)
	broker := runtime.NewBroker(logs.GetLoggerFromLevel(slog.LevelDebug))
	alice, err := NewTimeline("Alice", broker)
	req.NoError(err)
	bob, err := NewTimeline("Bob", broker)
	req.NoError(err)
	req.NoError(broker.Register(alice))
	req.NoError(broker.Register(bob))

	// When Alice's colleague passes Bob as the sender
	err = alice.Colleague.Send(bob, "hi")

	// Then the broadcast is refused and nobody receives it
	req.ErrorIs(err, errors.ErrPreconditionViolation)
	req.Empty(alice.Messages)
	req.Empty(bob.Messages)
}
