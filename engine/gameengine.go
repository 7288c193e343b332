package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minaorangina/spacepalace/game"
	"github.com/minaorangina/spacepalace/protocol"
)

const defaultSafetyTimeout = 5 * time.Second

var (
	ErrTurnInProgress = errors.New("computer turn in progress")
	ErrUnknownCommand = errors.New("unknown command")
	ErrEngineStopped  = errors.New("game engine stopped")
)

// GameEngine runs one match. All game state is owned by the Listen goroutine.
type GameEngine interface {
	ID() string
	Listen(ctx context.Context)
	AddPlayer(Player) error
	RemovePlayer(playerID string)
	Receive(protocol.InboundMessage)
	State() game.State
	Done() <-chan struct{}
}

type GameEngineOpts struct {
	GameID        string
	ComputerDelay time.Duration
	SafetyTimeout time.Duration
	// Seed of 0 seeds from the clock.
	Seed   int64
	Logger *logrus.Logger
	// State resumes from an existing snapshot instead of a fresh match.
	State *game.State
	// IdleTimeout stops the engine once it has had no players for this long.
	// Zero keeps it running until its context is cancelled.
	IdleTimeout time.Duration
}

type stepKind int

const (
	computerStep stepKind = iota
	safetyStep
	idleStep
)

type step struct {
	kind  stepKind
	token uint64
}

type gameEngine struct {
	id      string
	state   game.State
	players Players
	rng     *rand.Rand
	logger  *logrus.Logger

	delay  time.Duration
	safety time.Duration
	idle   time.Duration

	registerCh   chan Player
	unregisterCh chan string
	inboundCh    chan protocol.InboundMessage
	stepCh       chan step
	stateCh      chan chan game.State

	// guard is the token of the computer turn in flight, 0 when none is.
	guard         uint64
	lastToken     uint64
	computerTimer *time.Timer
	safetyTimer   *time.Timer

	idleToken uint64
	idleTimer *time.Timer

	stopOnce sync.Once
	done     chan struct{}
	final    game.State
}

// NewGameEngine constructs a GameEngine. Call Listen to start it.
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.GameID == "" {
		return nil, fmt.Errorf("%w: missing game ID", ErrInvalidConfig)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	safety := opts.SafetyTimeout
	if safety <= 0 {
		safety = defaultSafetyTimeout
	}

	state := game.New()
	if opts.State != nil {
		state = *opts.State
	}

	return &gameEngine{
		id:           opts.GameID,
		state:        state,
		players:      NewPlayers(),
		rng:          rand.New(rand.NewSource(seed)),
		logger:       logger,
		delay:        opts.ComputerDelay,
		safety:       safety,
		idle:         opts.IdleTimeout,
		registerCh:   make(chan Player),
		unregisterCh: make(chan string),
		inboundCh:    make(chan protocol.InboundMessage),
		stepCh:       make(chan step),
		stateCh:      make(chan chan game.State),
		done:         make(chan struct{}),
	}, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) Done() <-chan struct{} {
	return ge.done
}

// AddPlayer attaches a player. It is sent the current state straight away.
func (ge *gameEngine) AddPlayer(p Player) error {
	select {
	case ge.registerCh <- p:
		return nil
	case <-ge.done:
		return ErrEngineStopped
	}
}

func (ge *gameEngine) RemovePlayer(playerID string) {
	select {
	case ge.unregisterCh <- playerID:
	case <-ge.done:
	}
}

// Receive queues an action from a player.
func (ge *gameEngine) Receive(msg protocol.InboundMessage) {
	select {
	case ge.inboundCh <- msg:
	case <-ge.done:
	}
}

// State returns a snapshot of the match.
func (ge *gameEngine) State() game.State {
	reply := make(chan game.State, 1)
	select {
	case ge.stateCh <- reply:
		return <-reply
	case <-ge.done:
		return ge.final
	}
}

// Listen processes registrations, actions and computer steps until ctx is
// cancelled or the game has been without players for the idle timeout.
func (ge *gameEngine) Listen(ctx context.Context) {
	defer ge.stop()

	ge.log().Info("game engine listening")

	// a resumed snapshot may already be waiting on the computer
	ge.scheduleComputer(ge.delay)
	ge.armIdle()

	for {
		select {
		case <-ctx.Done():
			ge.log().Info("game engine stopping")
			return

		case p := <-ge.registerCh:
			ge.players = ge.players.Add(p)
			ge.disarmIdle()
			ge.log().WithField("player_id", p.ID()).Debug("player attached")
			ge.send(p, ge.state.BuildStateMessage(p.ID(), nil))

		case id := <-ge.unregisterCh:
			ge.players = ge.players.Remove(id)
			ge.log().WithField("player_id", id).Debug("player detached")
			ge.armIdle()

		case msg := <-ge.inboundCh:
			ge.handleInbound(msg)

		case s := <-ge.stepCh:
			if s.kind == idleStep {
				if s.token == ge.idleToken && len(ge.players) == 0 {
					ge.log().Info("game engine idle, stopping")
					return
				}
				continue
			}
			ge.handleStep(s)

		case reply := <-ge.stateCh:
			reply <- ge.state
		}
	}
}

func (ge *gameEngine) stop() {
	ge.stopOnce.Do(func() {
		ge.clearGuard()
		ge.disarmIdle()
		ge.final = ge.state
		close(ge.done)
	})
}

func (ge *gameEngine) log() *logrus.Entry {
	return ge.logger.WithFields(logrus.Fields{
		"game_id": ge.id,
		"round":   ge.state.Round.Number,
		"turn":    ge.state.Turn.String(),
		"phase":   ge.state.Phase.String(),
	})
}

func (ge *gameEngine) handleInbound(msg protocol.InboundMessage) {
	log := ge.log().WithFields(logrus.Fields{"cmd": msg.Command.String(), "player_id": msg.PlayerID})

	if ge.guard != 0 && msg.Command != protocol.Restart {
		log.Debug("action refused while computer is moving")
		ge.reject(msg.PlayerID, ErrTurnInProgress)
		return
	}

	next, events, err := ge.apply(msg)
	if err != nil {
		log.WithError(err).Debug("action rejected")
		ge.reject(msg.PlayerID, err)
		return
	}

	if msg.Command == protocol.Restart {
		ge.clearGuard()
	}

	log.Debug("action applied")
	ge.commit(next, events)
}

func (ge *gameEngine) apply(msg protocol.InboundMessage) (game.State, []protocol.Event, error) {
	s := ge.state

	switch msg.Command {
	case protocol.BeginRound:
		return s.BeginRound(ge.rng)
	case protocol.Swap:
		if len(msg.CardIDs) != 2 {
			return s, nil, fmt.Errorf("%w: swap needs a hand card and a face-up card", game.ErrUnknownCard)
		}
		return s.Swap(msg.CardIDs[0], msg.CardIDs[1])
	case protocol.FinishSwapping:
		return s.FinishSwapping()
	case protocol.PlayHand:
		return s.Play(game.Human, game.Hand, msg.CardIDs)
	case protocol.PlayFaceUp:
		return s.Play(game.Human, game.FaceUp, msg.CardIDs)
	case protocol.PlayFaceDown:
		return s.Play(game.Human, game.FaceDown, msg.CardIDs)
	case protocol.PickUpPile:
		return s.PickUpPile(game.Human)
	case protocol.NextRound:
		return s.NextRound()
	case protocol.Restart:
		return s.Restart()
	}

	return s, nil, fmt.Errorf("%w: %s", ErrUnknownCommand, msg.Command)
}

func (ge *gameEngine) handleStep(s step) {
	if s.token != ge.guard {
		ge.log().WithField("token", s.token).Debug("ignoring stale step")
		return
	}

	switch s.kind {
	case computerStep:
		ge.clearGuard()

		next, events, err := ge.state.ComputerTurn(ge.rng)
		if err != nil {
			ge.log().WithError(err).Error("computer turn failed")
			return
		}
		ge.commit(next, events)

	case safetyStep:
		ge.log().WithField("token", s.token).Error("computer turn stuck, clearing guard")
		ge.clearGuard()
		ge.scheduleComputer(0)
	}
}

func (ge *gameEngine) commit(next game.State, events []protocol.Event) {
	ge.state = next
	ge.broadcast(events)
	ge.scheduleComputer(ge.delay)
}

// scheduleComputer arms the computer's move if it is the computer's turn
// and no move is already pending.
func (ge *gameEngine) scheduleComputer(delay time.Duration) {
	if ge.guard != 0 || ge.state.Phase != game.Playing || ge.state.Turn != game.Computer {
		return
	}

	ge.lastToken++
	token := ge.lastToken
	ge.guard = token

	ge.computerTimer = time.AfterFunc(delay, func() {
		ge.enqueue(step{kind: computerStep, token: token})
	})
	ge.safetyTimer = time.AfterFunc(ge.safety, func() {
		ge.enqueue(step{kind: safetyStep, token: token})
	})
}

func (ge *gameEngine) enqueue(s step) {
	select {
	case ge.stepCh <- s:
	case <-ge.done:
	}
}

func (ge *gameEngine) clearGuard() {
	if ge.computerTimer != nil {
		ge.computerTimer.Stop()
		ge.computerTimer = nil
	}
	if ge.safetyTimer != nil {
		ge.safetyTimer.Stop()
		ge.safetyTimer = nil
	}
	ge.guard = 0
}

// armIdle starts the idle countdown when nobody is attached.
func (ge *gameEngine) armIdle() {
	if ge.idle <= 0 || len(ge.players) > 0 {
		return
	}

	ge.disarmIdle()
	token := ge.idleToken
	ge.idleTimer = time.AfterFunc(ge.idle, func() {
		ge.enqueue(step{kind: idleStep, token: token})
	})
}

func (ge *gameEngine) disarmIdle() {
	if ge.idleTimer != nil {
		ge.idleTimer.Stop()
		ge.idleTimer = nil
	}
	ge.idleToken++
}

func (ge *gameEngine) broadcast(events []protocol.Event) {
	for _, p := range ge.players {
		ge.send(p, ge.state.BuildStateMessage(p.ID(), events))
	}
}

func (ge *gameEngine) reject(playerID string, err error) {
	p, ok := ge.players.Find(playerID)
	if !ok {
		ge.log().WithField("player_id", playerID).Warn("rejected action from unknown player")
		return
	}
	ge.send(p, ge.state.BuildErrorMessage(playerID, err))
}

func (ge *gameEngine) send(p Player, msg protocol.OutboundMessage) {
	if err := p.Send(msg); err != nil {
		ge.log().WithError(err).WithField("player_id", p.ID()).Warn("could not send to player")
	}
}
