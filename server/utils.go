package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/sirupsen/logrus"
)

const gameIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewGameID returns a six letter game code.
func NewGameID(rng *rand.Rand) string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = gameIDLetters[rng.Intn(len(gameIDLetters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// decodeBody decodes an optional JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeParseError(log logrus.FieldLogger, err error, w http.ResponseWriter) {
	log.WithError(err).Debug("could not parse request body")
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("Invalid body"))
}

func writeJSON(log logrus.FieldLogger, w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("could not marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
