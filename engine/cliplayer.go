package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/minaorangina/spacepalace/deck"
	"github.com/minaorangina/spacepalace/protocol"
)

var (
	ErrBadCardIndex = errors.New("invalid card number")
	ErrMissingCards = errors.New("choose at least one card")
)

// CLIPlayer renders the game to a terminal and turns typed commands into actions.
type CLIPlayer struct {
	id  string
	out io.Writer

	mu   sync.Mutex
	last protocol.OutboundMessage
}

func NewCLIPlayer(id string, out io.Writer) *CLIPlayer {
	return &CLIPlayer{id: id, out: out}
}

func (p *CLIPlayer) ID() string {
	return p.id
}

func (p *CLIPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.last = msg

	text := RenderState(msg)
	if msg.Command == protocol.Error {
		text = RenderError(msg)
	}
	_, err := io.WriteString(p.out, text)
	return err
}

func (p *CLIPlayer) Help() {
	SendText(p.out, helpText)
}

var cliCommands = map[string]protocol.Cmd{
	"begin":   protocol.BeginRound,
	"swap":    protocol.Swap,
	"done":    protocol.FinishSwapping,
	"play":    protocol.PlayHand,
	"up":      protocol.PlayFaceUp,
	"down":    protocol.PlayFaceDown,
	"pickup":  protocol.PickUpPile,
	"next":    protocol.NextRound,
	"restart": protocol.Restart,
}

// Parse turns a typed line into an action, resolving card numbers against
// the last state the player was shown.
func (p *CLIPlayer) Parse(line string) (protocol.InboundMessage, error) {
	p.mu.Lock()
	last := p.last
	p.mu.Unlock()

	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	cmd, ok := cliCommands[fields[0]]
	if !ok {
		return protocol.InboundMessage{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	msg := protocol.InboundMessage{PlayerID: p.id, Command: cmd}
	args := fields[1:]

	var err error
	switch cmd {
	case protocol.Swap:
		if len(args) != 2 {
			return msg, fmt.Errorf("%w: swap takes a hand card and a face-up card", ErrMissingCards)
		}
		var handID, faceUpID string
		if handID, err = pickCard(last.Hand, args[0]); err != nil {
			return msg, err
		}
		if faceUpID, err = pickCard(last.FaceUp, args[1]); err != nil {
			return msg, err
		}
		msg.CardIDs = []string{handID, faceUpID}
	case protocol.PlayHand:
		msg.CardIDs, err = pickCards(last.Hand, args)
	case protocol.PlayFaceUp:
		msg.CardIDs, err = pickCards(last.FaceUp, args)
	case protocol.PlayFaceDown:
		msg.CardIDs, err = pickCards(last.FaceDown, args)
	}

	return msg, err
}

func pickCards(zone []deck.Card, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrMissingCards
	}
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := pickCard(zone, arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func pickCard(zone []deck.Card, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(zone) {
		return "", fmt.Errorf("%w: %s", ErrBadCardIndex, arg)
	}
	return zone[n-1].ID, nil
}
