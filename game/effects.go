package game

import (
	"fmt"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
)

// resolve places the played cards and applies their rank's effect.
// It reports whether the side plays again, plus a status message for the effect.
func (w *State) resolve(side Side, played []deck.Card) (bool, string) {
	rank := played[0].Rank

	switch rank {
	case deck.Ace:
		w.burnPile()
		w.burn(played...)
		return true, "Ace played - pile cleared!"

	case deck.BlackHole:
		w.burnPile()
		w.burn(w.Deck...)
		w.Deck = nil
		w.burn(played...)
		w.emit(protocol.EventBlackHole, side, played, "")
		return false, "Black Hole played - cosmic distortion activated!"

	case deck.Wormhole:
		w.burn(played...)
		w.Players[Human].Hand, w.Players[Computer].Hand = w.Players[Computer].Hand, w.Players[Human].Hand
		sortByValue(w.Players[Human].Hand)
		w.emit(protocol.EventWormhole, side, played, "")
		return false, "Wormhole played - swapping hand cards between players!"

	case deck.Supernova:
		for _, s := range []Side{Human, Computer} {
			pc := &w.Players[s]
			w.burn(pc.FaceUp...)
			w.burn(pc.FaceDown...)
			pc.FaceUp, pc.FaceDown = nil, nil
		}
		w.burn(played...)
		w.emit(protocol.EventSupernova, side, played, "")
		return false, "Supernova played - burning all palace cards!"

	case deck.AsteroidField:
		w.burn(played...)
		target := side.Opponent()
		drawn := w.draw(target, asteroidDraw)
		w.emit(protocol.EventAsteroid, target, drawn, "")
		who := "you"
		if target == Computer {
			who = "computer"
		}
		return false, fmt.Sprintf("Asteroid Field played - %s must draw two cards!", who)

	case deck.Two:
		w.burnPile()
		w.Pile = append(w.Pile, played...)
		if len(played) == burnNum {
			w.emit(protocol.EventFourOfAKind, side, played, "")
		}
		return false, "2 played - all cards below removed from the game!"
	}

	if len(played) == burnNum {
		w.burnPile()
		w.Pile = append(w.Pile, played...)
		w.emit(protocol.EventFourOfAKind, side, played, "")
		return false, fmt.Sprintf("Four %ss played - pile burned!", rank.Display())
	}

	w.Pile = append(w.Pile, played...)

	if rank == deck.Glitch {
		w.emit(protocol.EventDistortion, side, played, "")
		return false, "Glitch card played - reality distorted!"
	}

	return false, ""
}

func (w *State) burnPile() {
	w.burn(w.Pile...)
	w.Pile = nil
}

func (w *State) burn(cards ...deck.Card) {
	if len(cards) == 0 {
		return
	}
	w.Burned = append(w.Burned, cards...)
	w.emit(protocol.EventBurn, w.Turn, cards, "")
}
