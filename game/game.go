package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
)

var (
	ErrWrongPhase  = errors.New("action not allowed in this phase")
	ErrNotYourTurn = errors.New("not your turn")
	ErrNoCards     = errors.New("no cards chosen")
	ErrMixedRanks  = errors.New("can only play multiple cards of the same rank")
	ErrIllegalPlay = errors.New("can't play that card")
	ErrWrongSource = errors.New("must play from another zone first")
	ErrPlayOneCard = errors.New("must play one card only")
	ErrUnknownCard = errors.New("card not found")
	ErrEmptyPile   = errors.New("pile is empty")
	ErrNoNextRound = errors.New("no next round available")
)

// State is a snapshot of a match. Transitions never modify the receiver:
// each returns a new State along with the effect events it produced.
type State struct {
	Phase      Phase
	Round      RoundContext
	Turn       Side
	Deck       deck.Deck
	Pile       []deck.Card
	Burned     []deck.Card
	Players    [2]PlayerCards
	Outcome    Outcome
	Winner     Side
	Message    string
	AceChain   int // aces the computer has played this turn
	TotalCards int // cards in play this round

	events []protocol.Event
}

// New returns a match waiting to begin its first round.
func New() State {
	return newRoundState(NewRound(1))
}

func newRoundState(round RoundContext) State {
	return State{
		Phase:   Setup,
		Round:   round,
		Turn:    Human,
		Message: "Round starting...",
	}
}

// HasWon reports whether the side has emptied all of its zones.
func (s State) HasWon(side Side) bool {
	return s.Players[side].Empty()
}

// Human returns the human's cards.
func (s State) Human() PlayerCards {
	return s.Players[Human]
}

// Computer returns the computer's cards.
func (s State) Computer() PlayerCards {
	return s.Players[Computer]
}

// BeginRound builds and deals the round's deck and opens the swapping phase.
func (s State) BeginRound(rng *rand.Rand) (State, []protocol.Event, error) {
	if s.Phase != Setup {
		return s, nil, ErrWrongPhase
	}

	w := s.clone()
	w.Deck = deck.Build(w.Round.Number, rng)
	w.TotalCards = len(w.Deck)
	w.Pile = nil
	w.Burned = nil

	humanHand := w.Deck.Deal(numCardsInGroup)
	humanFaceDown := w.Deck.Deal(numCardsInGroup)
	humanFaceUp := w.Deck.Deal(numCardsInGroup)
	computerHand := w.Deck.Deal(numCardsInGroup)
	computerFaceDown := w.Deck.Deal(numCardsInGroup)
	computerFaceUp := w.Deck.Deal(numCardsInGroup)

	w.Players[Human] = NewPlayerCards(humanHand, humanFaceUp, humanFaceDown)
	sortByValue(w.Players[Human].Hand)

	computerHand, computerFaceUp = reorgComputerCards(computerHand, computerFaceUp)
	w.Players[Computer] = NewPlayerCards(computerHand, computerFaceUp, computerFaceDown)

	w.Phase = Swapping
	w.Turn = Human
	w.Outcome = NoOutcome
	w.AceChain = 0
	w.Message = "Swap your hand cards with the cards in your Palace area. Place your strongest cards in your Palace area for later."
	w.emit(protocol.EventRoundStarted, Human, nil, fmt.Sprintf("Round %d: %s", w.Round.Number, w.Round.Opponent.Name))

	return w.done()
}

// Swap exchanges one of the human's hand cards with one of their face-up cards.
func (s State) Swap(handID, faceUpID string) (State, []protocol.Event, error) {
	if s.Phase != Swapping {
		return s, nil, ErrWrongPhase
	}

	pc := s.Players[Human]
	handCards, ok := findCards(pc.Hand, []string{handID})
	if !ok {
		return s, nil, ErrUnknownCard
	}
	faceUpCards, ok := findCards(pc.FaceUp, []string{faceUpID})
	if !ok {
		return s, nil, ErrUnknownCard
	}

	w := s.clone()
	human := &w.Players[Human]
	for i, c := range human.Hand {
		if c.ID == handID {
			human.Hand[i] = faceUpCards[0]
		}
	}
	for i, c := range human.FaceUp {
		if c.ID == faceUpID {
			human.FaceUp[i] = handCards[0]
		}
	}
	sortByValue(human.Hand)

	w.emit(protocol.EventSwap, Human, []deck.Card{handCards[0], faceUpCards[0]}, "")
	return w.done()
}

// FinishSwapping starts play. The human always leads.
func (s State) FinishSwapping() (State, []protocol.Event, error) {
	if s.Phase != Swapping {
		return s, nil, ErrWrongPhase
	}

	w := s.clone()
	w.Phase = Playing
	w.Turn = Human
	w.startTurn(Human)
	w.Message = w.turnMessage()
	return w.done()
}

// Play plays the cards with the given ids from one of side's zones.
// A face-down card is revealed first; if it cannot be played the side picks up the pile.
func (s State) Play(side Side, src Source, ids []string) (State, []protocol.Event, error) {
	if s.Phase != Playing {
		return s, nil, ErrWrongPhase
	}
	if side != s.Turn {
		return s, nil, ErrNotYourTurn
	}
	if len(ids) == 0 {
		return s, nil, ErrNoCards
	}

	pc := s.Players[side]
	if src != pc.ActiveSource() {
		return s, nil, ErrWrongSource
	}
	if src == FaceDown && len(ids) != 1 {
		return s, nil, ErrPlayOneCard
	}

	cards, ok := findCards(pc.Zone(src), ids)
	if !ok {
		return s, nil, ErrUnknownCard
	}

	if src == FaceDown {
		w := s.clone()
		w.reveal(side, cards[0])
		return w.done()
	}

	if !sameRank(cards) {
		return s, nil, ErrMixedRanks
	}
	if !CanPlay(cards[0], s.Pile) {
		return s, nil, ErrIllegalPlay
	}

	w := s.clone()
	w.play(side, src, cards)
	return w.done()
}

// PickUpPile moves the whole pile into side's hand and passes the turn.
func (s State) PickUpPile(side Side) (State, []protocol.Event, error) {
	if s.Phase != Playing {
		return s, nil, ErrWrongPhase
	}
	if side != s.Turn {
		return s, nil, ErrNotYourTurn
	}
	if len(s.Pile) == 0 {
		return s, nil, ErrEmptyPile
	}

	w := s.clone()
	w.pickUp(side)
	w.passTurn()
	w.Message = pickUpMessages[side]
	return w.done()
}

// NextRound moves on to the next opponent after a round win.
func (s State) NextRound() (State, []protocol.Event, error) {
	if s.Phase != GameOver || s.Outcome != RoundWon {
		return s, nil, ErrNoNextRound
	}
	return newRoundState(s.Round.Next()).done()
}

// Restart returns to the first round.
func (s State) Restart() (State, []protocol.Event, error) {
	return New().done()
}

// LegalMoves returns the ids of the cards side may play right now.
// Face-down cards are never listed as their legality is unknown until revealed.
func (s State) LegalMoves(side Side) []string {
	if s.Phase != Playing || s.Turn != side {
		return nil
	}
	pc := s.Players[side]
	src := pc.ActiveSource()
	if src == FaceDown {
		return nil
	}
	return getLegalMoves(s.Pile, pc.Zone(src))
}

var pickUpMessages = map[Side]string{
	Human:    "You picked up the pile",
	Computer: "Computer picks up the pile",
}

// play removes cards from the side's zone, resolves their effect, then
// either ends the round or hands over the turn.
func (w *State) play(side Side, src Source, cards []deck.Card) {
	zone := w.Players[side].zone(src)
	*zone = removeCards(*zone, cards)

	played := turnAll(cards, true)
	w.emit(protocol.EventPlay, side, played, "")

	again, effect := w.resolve(side, played)

	if w.checkWin(side) {
		return
	}

	if again && side == Computer {
		if w.AceChain > 0 {
			// one extra turn per computer turn
			again = false
		} else {
			w.AceChain++
		}
	}

	if again {
		w.Turn = side
		w.startTurn(side)
		w.emit(protocol.EventExtraTurn, side, nil, "")
		w.Message = againMessages[side]
	} else {
		w.passTurn()
	}

	if effect != "" {
		w.Message = effect
	}
}

var againMessages = map[Side]string{
	Human:    "Your turn again!",
	Computer: "Computer's turn again!",
}

// reveal flips a face-down card and plays it, or picks up the pile with it.
func (w *State) reveal(side Side, card deck.Card) {
	revealed := card.Turned(true)
	w.emit(protocol.EventReveal, side, []deck.Card{revealed}, revealMessage(side, revealed))

	if CanPlay(revealed, w.Pile) {
		w.play(side, FaceDown, []deck.Card{revealed})
		return
	}

	pc := &w.Players[side]
	pc.FaceDown = removeCards(pc.FaceDown, []deck.Card{revealed})
	pc.Hand = append(pc.Hand, revealed)
	w.pickUp(side)
	w.passTurn()

	if side == Human {
		w.Message = "Can't play that card! Picking up pile"
	} else {
		w.Message = pickUpMessages[Computer]
	}
}

func revealMessage(side Side, c deck.Card) string {
	if side == Human {
		return fmt.Sprintf("You revealed: %s", c.Rank.Display())
	}
	return fmt.Sprintf("Computer revealed: %s", c.Rank.Display())
}

func (w *State) pickUp(side Side) {
	pc := &w.Players[side]
	pc.Hand = append(pc.Hand, turnAll(w.Pile, true)...)
	if side == Human {
		sortByValue(pc.Hand)
	}
	w.emit(protocol.EventPickUp, side, w.Pile, "")
	w.Pile = nil
}

// draw takes up to n cards from the front of the deck into side's hand.
func (w *State) draw(side Side, n int) []deck.Card {
	drawn := turnAll(w.Deck.Deal(n), true)
	if len(drawn) == 0 {
		return drawn
	}
	pc := &w.Players[side]
	pc.Hand = append(pc.Hand, drawn...)
	if side == Human {
		sortByValue(pc.Hand)
	}
	w.emit(protocol.EventDraw, side, drawn, "")
	return drawn
}

// startTurn refills a short hand from the deck.
func (w *State) startTurn(side Side) {
	if short := numCardsInGroup - len(w.Players[side].Hand); short > 0 && len(w.Deck) > 0 {
		w.draw(side, short)
	}
}

func (w *State) passTurn() {
	w.AceChain = 0
	w.Turn = w.Turn.Opponent()
	w.startTurn(w.Turn)
	w.Message = w.turnMessage()
}

// checkWin ends the round if either side has no cards left, the actor first.
func (w *State) checkWin(actor Side) bool {
	for _, side := range []Side{actor, actor.Opponent()} {
		if !w.Players[side].Empty() {
			continue
		}

		w.Phase = GameOver
		w.Winner = side
		w.AceChain = 0

		switch {
		case side == Computer:
			w.Outcome = MatchLost
			w.Message = "Computer wins!"
			w.emit(protocol.EventMatchLost, side, nil, w.Message)
		case w.Round.Final():
			w.Outcome = MatchWon
			w.Message = "You've won the game!"
			w.emit(protocol.EventMatchWon, side, nil, w.Message)
		default:
			w.Outcome = RoundWon
			w.Message = "Round complete!"
			w.emit(protocol.EventRoundWon, side, nil, w.Message)
		}
		return true
	}
	return false
}

// turnMessage describes what the side to move must do.
func (s State) turnMessage() string {
	if s.Turn == Computer {
		return "Computer's turn"
	}
	return Instruction(s.Pile)
}

// Instruction tells the human what the pile requires.
func Instruction(pile []deck.Card) string {
	base, ok := EffectiveBase(pile)
	if !ok {
		return "Your turn - play any card to start"
	}
	if base.Rank == deck.Seven {
		return "Your turn - play a card LOWER than 7"
	}
	return fmt.Sprintf("Your turn - play a card higher than %s", base.Rank.Display())
}

func (w *State) emit(t protocol.EventType, side Side, cards []deck.Card, msg string) {
	w.events = append(w.events, protocol.Event{
		Type:    t,
		Actor:   side.String(),
		Cards:   cloneCards(cards),
		Message: msg,
	})
}

func (s State) clone() State {
	c := s
	c.Deck = s.Deck.Clone()
	c.Pile = cloneCards(s.Pile)
	c.Burned = cloneCards(s.Burned)
	c.Players = [2]PlayerCards{s.Players[Human].clone(), s.Players[Computer].clone()}
	c.events = nil
	return c
}

func (s State) done() (State, []protocol.Event, error) {
	events := s.events
	s.events = nil
	return s, events, nil
}
