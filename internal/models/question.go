package models

import "time"

// QuestionAnswer is one entry in the session's append-only question history.
type QuestionAnswer struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}
