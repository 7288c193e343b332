package game

import "github.com/minaorangina/spacepalace/deck"

// PlayerCards holds the three zones owned by one side.
type PlayerCards struct {
	Hand, FaceUp, FaceDown []deck.Card
}

// NewPlayerCards turns hand and face-up cards face up and face-down cards face down.
func NewPlayerCards(hand, faceUp, faceDown []deck.Card) PlayerCards {
	return PlayerCards{
		Hand:     turnAll(hand, true),
		FaceUp:   turnAll(faceUp, true),
		FaceDown: turnAll(faceDown, false),
	}
}

// Empty reports whether all three zones are empty.
func (pc PlayerCards) Empty() bool {
	return len(pc.Hand) == 0 && len(pc.FaceUp) == 0 && len(pc.FaceDown) == 0
}

// Count is the number of cards across all zones.
func (pc PlayerCards) Count() int {
	return len(pc.Hand) + len(pc.FaceUp) + len(pc.FaceDown)
}

// ActiveSource is the zone the side must play from.
func (pc PlayerCards) ActiveSource() Source {
	if len(pc.Hand) > 0 {
		return Hand
	}
	if len(pc.FaceUp) > 0 {
		return FaceUp
	}
	return FaceDown
}

// Zone returns the cards in the given zone.
func (pc PlayerCards) Zone(src Source) []deck.Card {
	switch src {
	case FaceUp:
		return pc.FaceUp
	case FaceDown:
		return pc.FaceDown
	default:
		return pc.Hand
	}
}

func (pc *PlayerCards) zone(src Source) *[]deck.Card {
	switch src {
	case FaceUp:
		return &pc.FaceUp
	case FaceDown:
		return &pc.FaceDown
	default:
		return &pc.Hand
	}
}

func (pc PlayerCards) clone() PlayerCards {
	return PlayerCards{
		Hand:     cloneCards(pc.Hand),
		FaceUp:   cloneCards(pc.FaceUp),
		FaceDown: cloneCards(pc.FaceDown),
	}
}
