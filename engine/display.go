package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
)

const (
	hiddenCardText = "?"
	emptyZoneText  = "-"
	helpText       = `Commands:
  begin            deal the round
  swap H F         swap hand card H with face-up card F
  done             finish swapping
  play N [N...]    play hand cards (same rank)
  up N [N...]      play face-up cards (same rank)
  down N           reveal face-down card N
  pickup           pick up the pile
  next             start the next round
  restart          start a new match
  help             show this text
  quit             leave
`
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func cardText(c deck.Card) string {
	if c.Rank == deck.NullRank {
		return hiddenCardText
	}
	return c.Short()
}

func inlineCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return emptyZoneText
	}
	texts := make([]string, 0, len(cards))
	for _, c := range cards {
		texts = append(texts, cardText(c))
	}
	return strings.Join(texts, " ")
}

func numberedCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return emptyZoneText
	}
	texts := make([]string, 0, len(cards))
	for i, c := range cards {
		texts = append(texts, fmt.Sprintf("%d) %s", i+1, cardText(c)))
	}
	return strings.Join(texts, "  ")
}

// RenderState renders a state message as text for a terminal.
func RenderState(msg protocol.OutboundMessage) string {
	var b strings.Builder

	round := msg.Round
	fmt.Fprintf(&b, "\n=== Round %d/%d vs %s ===\n", round.Number, round.Total, round.Name)
	if round.Tagline != "" {
		fmt.Fprintf(&b, "%q\n", round.Tagline)
	}
	fmt.Fprintf(&b, "Deck: %d   Burned: %d\n", msg.DeckCount, msg.BurnedCount)
	fmt.Fprintf(&b, "Pile: %s\n\n", inlineCards(msg.Pile))

	opp := msg.Opponent
	fmt.Fprintf(&b, "Computer  hand: %d card(s)  face up: %s  face down: %s\n",
		opp.HandCount, inlineCards(opp.FaceUp), inlineCards(opp.FaceDown))
	fmt.Fprintf(&b, "You       face up: %s\n", numberedCards(msg.FaceUp))
	fmt.Fprintf(&b, "          face down: %s\n", numberedCards(msg.FaceDown))
	fmt.Fprintf(&b, "          hand: %s\n\n", numberedCards(msg.Hand))

	for _, e := range msg.Events {
		if e.Message != "" {
			fmt.Fprintf(&b, "* %s\n", e.Message)
		}
	}
	if msg.Message != "" {
		fmt.Fprintf(&b, "%s\n", msg.Message)
	}
	if msg.Instruction != "" && msg.Instruction != msg.Message {
		fmt.Fprintf(&b, "%s\n", msg.Instruction)
	}

	return b.String()
}

// RenderError renders a refused action.
func RenderError(msg protocol.OutboundMessage) string {
	return fmt.Sprintf("! %s\n", msg.Message)
}
