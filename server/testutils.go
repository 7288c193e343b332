package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"

	utils "github.com/minaorangina/spacepalace/internal"
	"github.com/minaorangina/spacepalace/protocol"
	"github.com/minaorangina/spacepalace/store"
)

const wsTestTimeout = 2 * time.Second

func newTestServer(t *testing.T, str store.GameStore) *GameServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger, _ := test.NewNullLogger()
	return NewServer(ctx, ServerOpts{
		Store:         str,
		Logger:        logger,
		ComputerDelay: 10 * time.Millisecond,
		SafetyTimeout: time.Second,
		Seed:          3,
	})
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustCreateGame(t *testing.T, server http.Handler) NewGameRes {
	t.Helper()

	response := httptest.NewRecorder()
	server.ServeHTTP(response, newCreateGameRequest(mustMakeJson(t, NewGameReq{"Ripley"})))
	assertStatus(t, response.Code, http.StatusCreated)

	var got NewGameRes
	if err := json.NewDecoder(response.Body).Decode(&got); err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
	return got
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	url := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
	if playerID != "" {
		url += "&player_id=" + playerID
	}
	return url
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s %v", url, err)
	}

	return ws
}

func mustSend(t *testing.T, ws *websocket.Conn, msg protocol.InboundMessage) {
	t.Helper()

	if err := ws.WriteMessage(websocket.TextMessage, mustMakeJson(t, msg)); err != nil {
		t.Fatalf("could not send message over ws connection %v", err)
	}
}

func mustReceive(t *testing.T, ws *websocket.Conn) protocol.OutboundMessage {
	t.Helper()

	ws.SetReadDeadline(time.Now().Add(wsTestTimeout))
	_, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("could not read from ws connection %v", err)
	}

	var msg protocol.OutboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("could not unmarshal outbound message %v", err)
	}
	return msg
}
