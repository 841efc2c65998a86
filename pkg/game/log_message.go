package game

import (
	"fmt"
	"github.com/google/uuid"
	"jokerpoker/pkg/deck"
	"time"
)

// LogMessage is a single entry in the game log
// If PlayerIDs is empty, it's a general statement, otherwise the message reads like "{player} did X"
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []int64     `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

// newLogMessage returns a new LogMessage
func newLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// newCardsLogMessage is a log message that reveals a player's cards
func newCardsLogMessage(playerID int64, cards deck.Hand, format string, a ...interface{}) *LogMessage {
	lm := newLogMessage(playerID, format, a...)
	lm.Cards = cards.Clone()
	return lm
}
