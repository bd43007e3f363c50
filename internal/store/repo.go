package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current wire version of SnapshotData. Older
// snapshots are discarded and rebuilt from the vault on load.
const SnapshotVersion = 1

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ReviewStateData is the persisted form of one tutorial's review schedule.
// Dates use RFC3339 for JSON stability.
type ReviewStateData struct {
	TutorialID      string `json:"tutorial_id"`
	Stage           int    `json:"stage"`
	NextReviewDate  string `json:"next_review_date"`
	ConsecutiveHits int    `json:"consecutive_hits"`
	Graduated       bool   `json:"graduated"`
	Rusty           bool   `json:"rusty"`
	LastReviewDate  string `json:"last_review_date"`
}

// LearnerSummaryData caches the LLM-distilled learner profile between
// interviews so tutorial drafting does not re-read raw transcripts.
type LearnerSummaryData struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
	Patterns   []string `json:"patterns,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// SnapshotData captures the derived learner state at a point in time.
// Everything here can be rebuilt from the vault and the event log; the
// snapshot only avoids a replay on startup.
type SnapshotData struct {
	Version int                         `json:"version"`
	Reviews map[string]*ReviewStateData `json:"reviews,omitempty"`
	Learner *LearnerSummaryData         `json:"learner,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	PlanSummary     []PlanSlot
}

// PlanSlot is one planned tutorial in a session.
type PlanSlot struct {
	TutorialID string
	Category   string // "review", "frontier", or "catchup"
}

// AnswerEventData captures a single graded answer.
type AnswerEventData struct {
	SessionID      string
	TutorialID     string
	Category       string
	QuestionText   string
	ExpectedAnswer string
	LearnerAnswer  string
	Correct        bool
	GradedBy       string // "exact", "llm", or "self"
}

// QAEventData captures an ad-hoc or interview question/answer exchange.
type QAEventData struct {
	TutorialID string // empty for interview exchanges
	Question   string
	Answer     string
	Source     string // "ask" or "interview"
}

// ScoreEventData captures an understanding-score transition.
type ScoreEventData struct {
	TutorialID string
	FromScore  int // -1 when previously unscored
	ToScore    int
	FromState  string
	ToState    string
	Trigger    string
	SessionID  string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummaryRecord is a completed session as read back for stats.
type SessionSummaryRecord struct {
	SessionID       string
	Timestamp       time.Time
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// ScoreEventRecord is a score transition as read back for history views.
type ScoreEventRecord struct {
	TutorialID string
	FromScore  int
	ToScore    int
	FromState  string
	ToState    string
	Trigger    string
	SessionID  string
	Sequence   int64
	Timestamp  time.Time
}

// LLMEventRecord is an LLM request as read back for inspection.
type LLMEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsageStat aggregates LLM usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// CurrentSequence returns the highest event sequence issued so far.
	// Snapshots record it so replay can start from the right point.
	CurrentSequence(ctx context.Context) (int64, error)

	// AppendAnswerEvent records a graded quiz answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendQAEvent records an ad-hoc or interview exchange.
	AppendQAEvent(ctx context.Context, data QAEventData) error

	// AppendScoreEvent records an understanding-score transition.
	AppendScoreEvent(ctx context.Context, data ScoreEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LatestAnswerTime returns the newest answer timestamp for a tutorial,
	// or the zero time when it has never been quizzed in a session.
	LatestAnswerTime(ctx context.Context, tutorialID string) (time.Time, error)

	// TutorialAccuracy returns the all-time answer accuracy for a tutorial.
	TutorialAccuracy(ctx context.Context, tutorialID string) (float64, error)

	// RecentReviewAccuracy returns accuracy over the last N review answers.
	RecentReviewAccuracy(ctx context.Context, tutorialID string, lastN int) (float64, int, error)

	// StudyDays returns the distinct local calendar days with answer
	// activity, newest first.
	StudyDays(ctx context.Context) ([]time.Time, error)

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryScoreEvents returns score transitions for one tutorial, newest
	// first. An empty tutorialID returns transitions for all tutorials.
	QueryScoreEvents(ctx context.Context, tutorialID string, opts QueryOpts) ([]ScoreEventRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by row ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
