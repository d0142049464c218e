package models

import (
	"time"

	"github.com/applymate/applymate/internal/utils"
)

type SlotState string

const (
	SlotAbsent  SlotState = "absent"
	SlotPending SlotState = "pending"
	SlotReady   SlotState = "ready"
	SlotFailed  SlotState = "failed"
)

// Failure is the stored error detail for a failed slot.
type Failure struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// Slot is the observable state of one producer output. Value is set only in
// the ready state, Failure only in the failed state.
type Slot[T any] struct {
	State     SlotState `json:"state"`
	Value     *T        `json:"value,omitempty"`
	Failure   *Failure  `json:"failure,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Slot[T]) Ready() bool   { return s.State == SlotReady }
func (s Slot[T]) Pending() bool { return s.State == SlotPending }

type Session struct {
	ID        string    `json:"session_id"` // uuid v4
	CreatedAt time.Time `json:"created_at"`

	Resume Slot[ResumeProfile] `json:"resume"`
	Job    Slot[JobProfile]    `json:"job"`
	Match  Slot[MatchResult]   `json:"match"`

	SuggestedQuestions []string         `json:"suggested_questions,omitempty"`
	History            []QuestionAnswer `json:"history,omitempty"`
}

// Clone returns a deep copy so readers never observe in-place slot writes.
func (s *Session) Clone() Session {
	out := *s
	out.Resume = cloneSlot(s.Resume)
	out.Job = cloneSlot(s.Job)
	out.Match = cloneSlot(s.Match)
	if s.SuggestedQuestions != nil {
		out.SuggestedQuestions = append([]string(nil), s.SuggestedQuestions...)
	}
	if s.History != nil {
		out.History = append([]QuestionAnswer(nil), s.History...)
	}
	return out
}

func cloneSlot[T any](in Slot[T]) Slot[T] {
	out := in
	if in.Value != nil {
		v := *in.Value
		out.Value = &v
	}
	if in.Failure != nil {
		f := *in.Failure
		out.Failure = &f
	}
	return out
}
