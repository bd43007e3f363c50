package session

import (
	"time"

	"github.com/abhisek/railz/internal/quiz"
	"github.com/abhisek/railz/internal/tutorgen"
)

// sessionInitMsg is sent when planning completes. The finalizer is built
// alongside the plan because both need the loaded scheduler.
type sessionInitMsg struct {
	State     *quiz.State
	Finalizer *quiz.Finalizer
	Due       int
	Streak    int
	Err       error
}

// questionsReadyMsg carries the fetched question batch for the current slot.
type questionsReadyMsg struct {
	Questions []tutorgen.Question
	Err       error
}

// verdictMsg carries the grading outcome for a submitted answer.
type verdictMsg struct {
	Given   string
	Verdict quiz.Verdict
	Err     error
}

// timerTickMsg is sent every second to update the elapsed clock.
type timerTickMsg time.Time

// spinnerTickMsg is sent at short intervals to animate the waiting states.
type spinnerTickMsg time.Time

// sessionEndMsg is sent to trigger the finalize flow.
type sessionEndMsg struct{}

// sessionDoneMsg is sent once the session has been committed.
type sessionDoneMsg struct {
	Summary *quiz.Summary
	Err     error
}
