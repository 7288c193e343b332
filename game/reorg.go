package game

import (
	"sort"

	"github.com/minaorangina/spacepalace/deck"
)

// worth keeping for the palace
var strongRanks = map[deck.Rank]bool{
	deck.Two:    true,
	deck.Three:  true,
	deck.Ace:    true,
	deck.Jack:   true,
	deck.Queen:  true,
	deck.King:   true,
	deck.Glitch: true,
}

// reorgComputerCards moves strong cards into the computer's face-up zone and
// ordinary cards into its hand, leaving three in each.
func reorgComputerCards(hand, faceUp []deck.Card) ([]deck.Card, []deck.Card) {
	var strongHand, weakHand, strongFaceUp, weakFaceUp []deck.Card
	for _, c := range hand {
		if strongRanks[c.Rank] {
			strongHand = append(strongHand, c)
		} else {
			weakHand = append(weakHand, c)
		}
	}
	for _, c := range faceUp {
		if strongRanks[c.Rank] {
			strongFaceUp = append(strongFaceUp, c)
		} else {
			weakFaceUp = append(weakFaceUp, c)
		}
	}

	newFaceUp := append(strongFaceUp, strongHand...)
	newHand := append(weakHand, weakFaceUp...)

	// too many strong cards: the weakest go back to the hand
	for len(newFaceUp) > numCardsInGroup {
		sortByValue(newFaceUp)
		newHand = append(newHand, newFaceUp[0])
		newFaceUp = newFaceUp[1:]
	}

	// too many ordinary cards: the highest go up
	for len(newHand) > numCardsInGroup {
		sort.SliceStable(newHand, func(i, j int) bool {
			return newHand[i].Value() > newHand[j].Value()
		})
		newFaceUp = append(newFaceUp, newHand[0])
		newHand = newHand[1:]
	}

	return turnAll(newHand, true), turnAll(newFaceUp, true)
}
