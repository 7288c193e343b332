package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utils "github.com/minaorangina/spacepalace/internal"
	"github.com/minaorangina/spacepalace/store"
)

func TestNewGameID(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		id := NewGameID(rng)
		utils.AssertEqual(t, len(id), 6)
		utils.AssertEqual(t, strings.Trim(id, gameIDLetters), "")
	}
}

func TestServerPOSTNewGame(t *testing.T) {
	t.Run("succeeds and returns expected data", func(t *testing.T) {
		str := store.NewInMemoryGameStore()
		server := newTestServer(t, str)

		got := mustCreateGame(t, server)

		utils.AssertEqual(t, got.Name, "Ripley")
		utils.AssertEqual(t, len(got.GameID), 6)
		utils.AssertNotEmptyString(t, got.PlayerID)

		_, err := str.FindGame(got.GameID)
		utils.AssertNoError(t, err)
	})

	t.Run("a name is optional", func(t *testing.T) {
		response := httptest.NewRecorder()
		server := newTestServer(t, nil)
		server.ServeHTTP(response, newCreateGameRequest([]byte{}))

		assertStatus(t, response.Code, http.StatusCreated)
	})

	t.Run("returns 400 for a malformed body", func(t *testing.T) {
		response := httptest.NewRecorder()
		server := newTestServer(t, nil)
		server.ServeHTTP(response, newCreateGameRequest([]byte("{nope")))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("Does not match on GET /new", func(t *testing.T) {
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new", nil)

		server := newTestServer(t, nil)
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})

	t.Run("allows cross-origin requests", func(t *testing.T) {
		response := httptest.NewRecorder()
		request := newCreateGameRequest([]byte{})
		request.Header.Set("Origin", "http://example.com")

		server := newTestServer(t, nil)
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusCreated)
		utils.AssertEqual(t, response.Header().Get("Access-Control-Allow-Origin"), "*")
	})
}

func TestServerGETGame(t *testing.T) {
	t.Run("reports a live game", func(t *testing.T) {
		server := newTestServer(t, nil)
		created := mustCreateGame(t, server)

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(created.GameID))
		assertStatus(t, response.Code, http.StatusOK)

		var got GetGameRes
		require.NoError(t, json.NewDecoder(response.Body).Decode(&got))
		utils.AssertEqual(t, got.GameID, created.GameID)
		utils.AssertEqual(t, got.Status, "setup")
		utils.AssertEqual(t, got.Round, 1)
		assert.Empty(t, got.Outcome)
	})

	t.Run("404s for an unknown game", func(t *testing.T) {
		response := httptest.NewRecorder()
		server := newTestServer(t, nil)
		server.ServeHTTP(response, newGetGameRequest("NOSUCH"))

		assertStatus(t, response.Code, http.StatusNotFound)
		assert.Contains(t, response.Body.String(), unknownGameIDMsg("NOSUCH"))
	})

	t.Run("400s without a game ID", func(t *testing.T) {
		response := httptest.NewRecorder()
		server := newTestServer(t, nil)
		server.ServeHTTP(response, newGetGameRequest(""))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})
}

func TestServerWSRequiresAGame(t *testing.T) {
	t.Run("missing game ID", func(t *testing.T) {
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/ws", nil)

		server := newTestServer(t, nil)
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("unknown game ID", func(t *testing.T) {
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/ws?game_id=NOSUCH", nil)

		server := newTestServer(t, nil)
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}
