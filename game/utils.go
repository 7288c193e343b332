package game

import (
	"sort"

	"github.com/minaorangina/spacepalace/deck"
)

func cloneCards(cards []deck.Card) []deck.Card {
	if cards == nil {
		return nil
	}
	c := make([]deck.Card, len(cards))
	copy(c, cards)
	return c
}

func turnAll(cards []deck.Card, faceUp bool) []deck.Card {
	turned := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		turned = append(turned, c.Turned(faceUp))
	}
	return turned
}

// sortByValue orders cards lowest value first, keeping the order of equal cards.
func sortByValue(cards []deck.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Value() < cards[j].Value()
	})
}

func sameRank(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// findCards looks up each id in cards, failing on unknown or repeated ids.
func findCards(cards []deck.Card, ids []string) ([]deck.Card, bool) {
	byID := map[string]deck.Card{}
	for _, c := range cards {
		byID[c.ID] = c
	}

	found := make([]deck.Card, 0, len(ids))
	seen := map[string]struct{}{}
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			return nil, false
		}
		seen[id] = struct{}{}
		found = append(found, c)
	}
	return found, true
}

func removeCards(cards, toRemove []deck.Card) []deck.Card {
	ids := cardIDSet(toRemove)
	kept := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if _, ok := ids[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}

func cardIDSet(cards []deck.Card) map[string]struct{} {
	set := map[string]struct{}{}
	for _, c := range cards {
		set[c.ID] = struct{}{}
	}
	return set
}

func cardIDs(cards []deck.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}
