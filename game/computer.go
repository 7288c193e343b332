package game

import (
	"math/rand"
	"sort"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
)

// MoveKind is the kind of action the computer takes.
type MoveKind int

const (
	MovePlay MoveKind = iota
	MovePickUp
	MovePass
)

// Move is a decision made by the computer policy.
type Move struct {
	Kind   MoveKind
	Source Source
	Cards  []deck.Card
}

// conserved ranks are played one at a time and only when nothing else fits.
func conserved(r deck.Rank) bool {
	return r.Universal() || r == deck.Ace
}

// ChooseMove picks the computer's action for the given cards and pile.
func ChooseMove(pc PlayerCards, pile []deck.Card, rng *rand.Rand) Move {
	src := pc.ActiveSource()

	if src == FaceDown {
		if len(pc.FaceDown) == 0 {
			return Move{Kind: MovePass}
		}
		pick := pc.FaceDown[rng.Intn(len(pc.FaceDown))]
		return Move{Kind: MovePlay, Source: FaceDown, Cards: []deck.Card{pick}}
	}

	var ordinary, special [][]deck.Card
	for _, group := range groupByRank(pc.Zone(src)) {
		if !CanPlay(group[0], pile) {
			continue
		}
		if conserved(group[0].Rank) {
			special = append(special, group)
		} else {
			ordinary = append(ordinary, group)
		}
	}

	if len(ordinary) > 0 {
		sort.SliceStable(ordinary, func(i, j int) bool {
			vi, vj := ordinary[i][0].Value(), ordinary[j][0].Value()
			if vi != vj {
				return vi < vj
			}
			return len(ordinary[i]) > len(ordinary[j])
		})
		return Move{Kind: MovePlay, Source: src, Cards: ordinary[0]}
	}

	if len(special) > 0 {
		sort.SliceStable(special, func(i, j int) bool {
			return special[i][0].Value() < special[j][0].Value()
		})
		return Move{Kind: MovePlay, Source: src, Cards: special[0][:1]}
	}

	if len(pile) > 0 {
		return Move{Kind: MovePickUp}
	}

	return Move{Kind: MovePass}
}

// groupByRank groups cards by rank, in order of first appearance.
func groupByRank(cards []deck.Card) [][]deck.Card {
	var groups [][]deck.Card
	index := map[deck.Rank]int{}
	for _, c := range cards {
		i, ok := index[c.Rank]
		if !ok {
			index[c.Rank] = len(groups)
			groups = append(groups, []deck.Card{c})
			continue
		}
		groups[i] = append(groups[i], c)
	}
	return groups
}

// ComputerTurn plays one computer move. After a first ace the computer keeps
// the turn and the caller runs ComputerTurn again.
func (s State) ComputerTurn(rng *rand.Rand) (State, []protocol.Event, error) {
	if s.Phase != Playing {
		return s, nil, ErrWrongPhase
	}
	if s.Turn != Computer {
		return s, nil, ErrNotYourTurn
	}

	w := s.clone()
	if len(w.Pile) == 0 {
		w.startTurn(Computer)
	}

	move := ChooseMove(w.Players[Computer], w.Pile, rng)
	switch move.Kind {
	case MovePlay:
		if move.Source == FaceDown {
			w.reveal(Computer, move.Cards[0])
		} else {
			w.play(Computer, move.Source, move.Cards)
		}
	case MovePickUp:
		w.pickUp(Computer)
		w.passTurn()
		w.Message = pickUpMessages[Computer]
	default:
		w.emit(protocol.EventPass, Computer, nil, "")
		w.passTurn()
	}

	return w.done()
}
