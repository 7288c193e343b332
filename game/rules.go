package game

import (
	"github.com/minaorangina/spacepalace/deck"
)

const (
	numCardsInGroup = 3
	burnNum         = 4
	asteroidDraw    = 2
)

// EffectiveBase returns the card a play is compared against: the top of the
// pile, looking through any run of transparent cards (3 and glitch).
// A pile made only of transparent cards compares against its top card.
func EffectiveBase(pile []deck.Card) (deck.Card, bool) {
	if len(pile) == 0 {
		return deck.Card{}, false
	}

	for i := len(pile) - 1; i >= 0; i-- {
		if !pile[i].Rank.Transparent() {
			return pile[i], true
		}
	}

	return pile[len(pile)-1], true
}

// CanPlay decides whether card may be played on pile.
// Comparisons are strict at every depth: an equal value never beats the base.
func CanPlay(card deck.Card, pile []deck.Card) bool {
	if len(pile) == 0 {
		return true
	}

	if card.Rank.Universal() {
		return true
	}

	base, _ := EffectiveBase(pile)
	if base.Rank == deck.Seven {
		return card.Value() < deck.Seven.Value()
	}

	if card.Rank == deck.Ace {
		return true
	}

	return card.Value() > base.Value()
}

// getLegalMoves returns the ids of the cards in toPlay that may be played on pile.
func getLegalMoves(pile, toPlay []deck.Card) []string {
	moves := []string{}
	for _, c := range toPlay {
		if CanPlay(c, pile) {
			moves = append(moves, c.ID)
		}
	}
	return moves
}
