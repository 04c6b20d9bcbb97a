// Package uiws delivers the game list and shell notifications to the UI over a websocket.
package uiws

import (
	"bytes"
	"encoding/json"

	"github.com/frudas24/padnexus/internal/discovery"
)

// Message types.
const (
	TypeLoaded     = "loaded"
	TypeCommand    = "command"
	TypeGames      = "games"
	TypeVisibility = "visibility"
	TypeOpenConfig = "openConfig"
)

// Message is a websocket UI payload.
type Message struct {
	T       string           `json:"t"`
	Games   []discovery.Game `json:"games,omitempty"`
	Visible *bool            `json:"visible,omitempty"`
	Cmd     string           `json:"cmd,omitempty"`
}

// gamesPayload is the wire form of a games message; the array is always present.
type gamesPayload struct {
	T     string           `json:"t"`
	Games []discovery.Game `json:"games"`
}

// Encode serializes msg. Backslashes and quotes are escaped by the JSON
// encoder; HTML characters are left as is so paths and names arrive verbatim.
func Encode(msg Message) ([]byte, error) {
	var v any = msg
	if msg.T == TypeGames {
		games := msg.Games
		if games == nil {
			games = []discovery.Game{}
		}
		v = gamesPayload{T: msg.T, Games: games}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a UI payload.
func Decode(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}

// GamesMessage builds the game list payload.
func GamesMessage(games []discovery.Game) Message {
	return Message{T: TypeGames, Games: games}
}

// VisibilityMessage builds a visibility notification.
func VisibilityMessage(visible bool) Message {
	return Message{T: TypeVisibility, Visible: &visible}
}
