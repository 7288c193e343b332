package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utils "github.com/minaorangina/spacepalace/internal"
	"github.com/minaorangina/spacepalace/protocol"
)

func TestCLIPlayerSend(t *testing.T) {
	t.Run("renders state", func(t *testing.T) {
		out := NewTestBuffer()
		p := NewCLIPlayer("cli", out)

		require.NoError(t, p.Send(someStateMessage()))
		assert.Contains(t, out.String(), "Round 2/5 vs Space Cadet")
	})

	t.Run("renders refusals without the board", func(t *testing.T) {
		out := NewTestBuffer()
		p := NewCLIPlayer("cli", out)

		msg := someStateMessage()
		msg.Command = protocol.Error
		msg.Message = "Wait for your turn"
		require.NoError(t, p.Send(msg))

		utils.AssertEqual(t, out.String(), "! Wait for your turn\n")
	})

	t.Run("help", func(t *testing.T) {
		out := NewTestBuffer()
		NewCLIPlayer("cli", out).Help()
		assert.Contains(t, out.String(), "pickup")
	})
}

func TestCLIPlayerParse(t *testing.T) {
	p := NewCLIPlayer("cli", NewTestBuffer())
	require.NoError(t, p.Send(someStateMessage()))

	tt := []struct {
		line string
		want protocol.InboundMessage
	}{
		{"begin", protocol.InboundMessage{PlayerID: "cli", Command: protocol.BeginRound}},
		{"  DONE ", protocol.InboundMessage{PlayerID: "cli", Command: protocol.FinishSwapping}},
		{"swap 2 1", protocol.InboundMessage{PlayerID: "cli", Command: protocol.Swap, CardIDs: []string{"h2", "u1"}}},
		{"play 1", protocol.InboundMessage{PlayerID: "cli", Command: protocol.PlayHand, CardIDs: []string{"h1"}}},
		{"play 2 1", protocol.InboundMessage{PlayerID: "cli", Command: protocol.PlayHand, CardIDs: []string{"h2", "h1"}}},
		{"up 1", protocol.InboundMessage{PlayerID: "cli", Command: protocol.PlayFaceUp, CardIDs: []string{"u1"}}},
		{"down 2", protocol.InboundMessage{PlayerID: "cli", Command: protocol.PlayFaceDown, CardIDs: []string{"d2"}}},
		{"pickup", protocol.InboundMessage{PlayerID: "cli", Command: protocol.PickUpPile}},
		{"next", protocol.InboundMessage{PlayerID: "cli", Command: protocol.NextRound}},
		{"restart", protocol.InboundMessage{PlayerID: "cli", Command: protocol.Restart}},
	}

	for _, tc := range tt {
		t.Run(tc.line, func(t *testing.T) {
			got, err := p.Parse(tc.line)
			require.NoError(t, err)
			utils.AssertDeepEqual(t, got, tc.want)
		})
	}

	errs := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"dance", ErrUnknownCommand},
		{"play", ErrMissingCards},
		{"play 3", ErrBadCardIndex},
		{"play zero", ErrBadCardIndex},
		{"swap 1", ErrMissingCards},
		{"swap 1 2", ErrBadCardIndex},
		{"down 0", ErrBadCardIndex},
	}

	for _, tc := range errs {
		t.Run("error "+tc.line, func(t *testing.T) {
			_, err := p.Parse(tc.line)
			utils.AssertErrorIs(t, err, tc.want)
		})
	}
}
