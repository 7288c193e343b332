package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minaorangina/spacepalace/deck"
	utils "github.com/minaorangina/spacepalace/internal"
	"github.com/minaorangina/spacepalace/protocol"
)

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := NewTestBuffer()
		want := "Hello"
		SendText(buffer, want)

		utils.AssertEqual(t, buffer.String(), want)
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := NewTestBuffer()
		SendText(buffer, "Hello, %s", "human")

		utils.AssertEqual(t, buffer.String(), "Hello, human")
	})
}

func someStateMessage() protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command: protocol.State,
		Phase:   "playing",
		Turn:    "human",
		Round: protocol.Round{
			Number:  2,
			Total:   5,
			Name:    "Space Cadet",
			Tagline: "Learning the ropes",
		},
		Hand: []deck.Card{
			deck.NewCard("h1", deck.Four, deck.Hearts),
			deck.NewCard("h2", deck.BlackHole, deck.Special),
		},
		FaceUp:   []deck.Card{deck.NewCard("u1", deck.Queen, deck.Clubs)},
		FaceDown: []deck.Card{{ID: "d1"}, {ID: "d2"}},
		Opponent: protocol.Opponent{
			HandCount: 4,
			FaceUp:    []deck.Card{deck.NewCard("o1", deck.Ace, deck.Spades)},
			FaceDown:  []deck.Card{{ID: "o2"}},
		},
		Pile:        []deck.Card{deck.NewCard("p1", deck.Nine, deck.Diamonds)},
		DeckCount:   12,
		BurnedCount: 3,
		Message:     "Computer played 9",
		Instruction: "Your turn - play a card higher than 9",
		Events: []protocol.Event{
			{Type: protocol.EventPlay, Actor: "computer", Message: "Computer played 9"},
		},
	}
}

func TestRenderState(t *testing.T) {
	text := RenderState(someStateMessage())

	for _, want := range []string{
		"Round 2/5 vs Space Cadet",
		`"Learning the ropes"`,
		"Deck: 12   Burned: 3",
		"Pile: 9♦",
		"hand: 4 card(s)  face up: a♠  face down: ?",
		"face up: 1) q♣",
		"face down: 1) ?  2) ?",
		"hand: 1) 4♥  2) ✦Black Hole",
		"* Computer played 9",
		"Your turn - play a card higher than 9",
	} {
		assert.Contains(t, text, want)
	}

	t.Run("empty zones are marked", func(t *testing.T) {
		msg := someStateMessage()
		msg.Pile = nil
		msg.Hand = nil

		text := RenderState(msg)
		assert.Contains(t, text, "Pile: -")
		assert.Contains(t, text, "hand: -")
	})
}

func TestRenderError(t *testing.T) {
	got := RenderError(protocol.OutboundMessage{Command: protocol.Error, Message: "Can't play that card"})
	utils.AssertTrue(t, strings.HasPrefix(got, "! Can't play that card"))
}
