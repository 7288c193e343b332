package game

import (
	"fmt"
	"sort"
	"testing"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
	"github.com/stretchr/testify/require"
)

var cardSeq int

// newTestCard returns a face-up card with a unique id.
func newTestCard(rank deck.Rank) deck.Card {
	cardSeq++
	suit := deck.Hearts
	if rank.Cosmic() {
		suit = deck.Special
	}
	return deck.NewCard(fmt.Sprintf("%s-%d", rank.Code(), cardSeq), rank, suit).Turned(true)
}

func cardsOf(ranks ...deck.Rank) []deck.Card {
	cards := make([]deck.Card, 0, len(ranks))
	for _, r := range ranks {
		cards = append(cards, newTestCard(r))
	}
	return cards
}

func faceDownOf(ranks ...deck.Rank) []deck.Card {
	return turnAll(cardsOf(ranks...), false)
}

func ranksOf(cards []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Rank)
	}
	return ranks
}

// playingState builds a mid-round state with the human to move.
func playingState(human, computer PlayerCards, pile []deck.Card, d deck.Deck) State {
	s := New()
	s.Phase = Playing
	s.Turn = Human
	s.Players = [2]PlayerCards{human, computer}
	s.Pile = pile
	s.Deck = d
	s.TotalCards = len(allCards(s))
	return s
}

func allCards(s State) []deck.Card {
	var all []deck.Card
	all = append(all, s.Deck...)
	all = append(all, s.Pile...)
	all = append(all, s.Burned...)
	for _, pc := range s.Players {
		all = append(all, pc.Hand...)
		all = append(all, pc.FaceUp...)
		all = append(all, pc.FaceDown...)
	}
	return all
}

func assertPartition(t *testing.T, s State) {
	t.Helper()

	all := allCards(s)
	seen := map[string]bool{}
	for _, c := range all {
		require.False(t, seen[c.ID], "card %s in two zones", c.ID)
		seen[c.ID] = true
	}
	require.Equal(t, s.TotalCards, len(all))
}

func assertHandSorted(t *testing.T, s State) {
	t.Helper()

	hand := s.Players[Human].Hand
	require.True(t, sort.SliceIsSorted(hand, func(i, j int) bool {
		return hand[i].Value() < hand[j].Value()
	}), "human hand not sorted: %v", ranksOf(hand))
}

func hasEvent(events []protocol.Event, t protocol.EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}
