package server

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/minaorangina/spacepalace/engine"
	"github.com/minaorangina/spacepalace/store"
)

const maxNewGameAttempts = 5

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type NewGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type GetGameRes struct {
	Status  string `json:"status"`
	GameID  string `json:"game_id"`
	Round   int    `json:"round"`
	Turn    string `json:"turn"`
	Outcome string `json:"outcome,omitempty"`
}

type ServerOpts struct {
	Store         store.GameStore
	Logger        *logrus.Logger
	ComputerDelay time.Duration
	SafetyTimeout time.Duration
	// IdleTimeout stops a game that has had no connections for this long.
	IdleTimeout time.Duration
	// Seed of 0 gives every game its own clock seed.
	Seed int64
}

// GameServer is a game server
type GameServer struct {
	ctx    context.Context
	store  store.GameStore
	logger *logrus.Logger
	opts   ServerOpts

	idMu  sync.Mutex
	idRng *rand.Rand

	http.Server
}

// NewServer creates a new GameServer. Games it creates run until ctx is
// cancelled or they go idle.
func NewServer(ctx context.Context, opts ServerOpts) *GameServer {
	s := &GameServer{
		ctx:    ctx,
		store:  opts.Store,
		logger: opts.Logger,
		opts:   opts,
		idRng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if s.store == nil {
		s.store = store.NewInMemoryGameStore()
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}

	router := http.NewServeMux()
	router.HandleFunc("/new", s.HandleNewGame)
	router.HandleFunc("/game/", s.HandleFindGame)
	router.HandleFunc("/ws", s.HandleWS)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.Handler = handlers.LoggingHandler(s.logger.WriterLevel(logrus.DebugLevel), cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) newGameID() string {
	g.idMu.Lock()
	defer g.idMu.Unlock()
	return NewGameID(g.idRng)
}

// HandleNewGame starts a match against the computer.
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	if err := decodeBody(r, &data); err != nil {
		writeParseError(g.logger, err, w)
		return
	}

	game, err := g.startGame()
	if err != nil {
		g.logger.WithError(err).Error("could not start game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := NewGameRes{
		GameID:   game.ID(),
		PlayerID: engine.NewID(),
		Name:     data.Name,
	}

	g.logger.WithFields(logrus.Fields{"game_id": payload.GameID, "player_id": payload.PlayerID}).Info("game created")
	writeJSON(g.logger, w, http.StatusCreated, payload)
}

func (g *GameServer) startGame() (engine.GameEngine, error) {
	for attempt := 0; attempt < maxNewGameAttempts; attempt++ {
		game, err := engine.NewGameEngine(engine.GameEngineOpts{
			GameID:        g.newGameID(),
			ComputerDelay: g.opts.ComputerDelay,
			SafetyTimeout: g.opts.SafetyTimeout,
			IdleTimeout:   g.opts.IdleTimeout,
			Seed:          g.opts.Seed,
			Logger:        g.logger,
		})
		if err != nil {
			return nil, err
		}

		err = g.store.AddGame(game)
		if errors.Is(err, store.ErrGameExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithCancel(g.ctx)
		go game.Listen(ctx)
		go func() {
			<-game.Done()
			cancel()
			g.store.RemoveGame(game.ID())
			g.logger.WithField("game_id", game.ID()).Info("game removed")
		}()

		return game, nil
	}

	return nil, store.ErrGameExists
}

// HandleFindGame reports the status of a live game.
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	game, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	state := game.State()
	writeJSON(g.logger, w, http.StatusOK, GetGameRes{
		Status:  state.Phase.String(),
		GameID:  game.ID(),
		Round:   state.Round.Number,
		Turn:    state.Turn.String(),
		Outcome: state.Outcome.String(),
	})
}

// HandleWS attaches a websocket to a game. The connection is sent the
// current state and every state that follows.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	gameID := query.Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	playerID := query.Get("player_id")
	if playerID == "" {
		playerID = engine.NewID()
	}

	game, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	log := g.logger.WithFields(logrus.Fields{"game_id": gameID, "player_id": playerID})

	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		log.WithError(err).Warn("could not upgrade to websocket")
		return
	}

	player := NewWSPlayer(playerID, rawConn, game, log)
	if err := game.AddPlayer(player); err != nil {
		log.WithError(err).Warn("could not add player to game")
		player.Close()
		return
	}

	log.Info("player connected")
}
