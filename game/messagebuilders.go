package game

import (
	"errors"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
)

var rejectionMessages = map[error]string{
	ErrIllegalPlay: "Can't play that card",
	ErrMixedRanks:  "Can only play multiple cards of the same rank",
	ErrNotYourTurn: "Wait for your turn",
	ErrWrongSource: "Play the cards in your hand first",
	ErrPlayOneCard: "Reveal one face-down card at a time",
	ErrEmptyPile:   "There is no pile to pick up",
}

// RejectionMessage is the text shown to the human when an action is refused.
func RejectionMessage(err error) string {
	for target, msg := range rejectionMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// publicFaceDown hides the identity of cards that have not been revealed.
func publicFaceDown(cards []deck.Card) []deck.Card {
	public := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if c.FaceUp {
			public = append(public, c)
			continue
		}
		public = append(public, deck.Card{ID: c.ID})
	}
	return public
}

// publicEvents hides the cards the computer draws into its hand.
func publicEvents(events []protocol.Event) []protocol.Event {
	if events == nil {
		return nil
	}
	public := make([]protocol.Event, len(events))
	for i, e := range events {
		public[i] = e
		if e.Actor != Computer.String() || (e.Type != protocol.EventDraw && e.Type != protocol.EventAsteroid) {
			continue
		}
		hidden := make([]deck.Card, 0, len(e.Cards))
		for _, c := range e.Cards {
			hidden = append(hidden, deck.Card{ID: c.ID})
		}
		public[i].Cards = hidden
	}
	return public
}

func nonNil(cards []deck.Card) []deck.Card {
	if cards == nil {
		return []deck.Card{}
	}
	return cards
}

func (s State) buildBaseMessage(playerID string) protocol.OutboundMessage {
	human, computer := s.Players[Human], s.Players[Computer]

	return protocol.OutboundMessage{
		PlayerID: playerID,
		Phase:    s.Phase.String(),
		Turn:     s.Turn.String(),
		Round: protocol.Round{
			Number:  s.Round.Number,
			Total:   s.Round.Total,
			ID:      s.Round.Opponent.ID,
			Name:    s.Round.Opponent.Name,
			Tagline: s.Round.Opponent.Tagline,
			Ability: s.Round.Opponent.Ability,
		},
		Message:  s.Message,
		Hand:     nonNil(cloneCards(human.Hand)),
		FaceUp:   nonNil(cloneCards(human.FaceUp)),
		FaceDown: publicFaceDown(human.FaceDown),
		Opponent: protocol.Opponent{
			HandCount: len(computer.Hand),
			FaceUp:    nonNil(cloneCards(computer.FaceUp)),
			FaceDown:  publicFaceDown(computer.FaceDown),
		},
		Pile:        nonNil(cloneCards(s.Pile)),
		BurnedCount: len(s.Burned),
		DeckCount:   len(s.Deck),
		Outcome:     s.Outcome.String(),
	}
}

// BuildStateMessage builds the human's view of the game after a transition.
func (s State) BuildStateMessage(playerID string, events []protocol.Event) protocol.OutboundMessage {
	msg := s.buildBaseMessage(playerID)
	msg.Command = protocol.State
	msg.Events = publicEvents(events)

	if s.Phase == Playing && s.Turn == Human {
		msg.Instruction = Instruction(s.Pile)
		msg.Moves = s.LegalMoves(Human)
	}

	return msg
}

// BuildErrorMessage reports a refused action along with the unchanged state.
func (s State) BuildErrorMessage(playerID string, err error) protocol.OutboundMessage {
	msg := s.BuildStateMessage(playerID, nil)
	msg.Command = protocol.Error
	msg.Message = RejectionMessage(err)
	msg.Error = err.Error()
	return msg
}
