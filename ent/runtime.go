// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/railz/ent/answerevent"
	"github.com/abhisek/railz/ent/llmrequestevent"
	"github.com/abhisek/railz/ent/qaevent"
	"github.com/abhisek/railz/ent/schema"
	"github.com/abhisek/railz/ent/scoreevent"
	"github.com/abhisek/railz/ent/sessionevent"
	"github.com/abhisek/railz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescTutorialID is the schema descriptor for tutorial_id field.
	answereventDescTutorialID := answereventFields[1].Descriptor()
	// answerevent.TutorialIDValidator is a validator for the "tutorial_id" field. It is called by the builders before save.
	answerevent.TutorialIDValidator = answereventDescTutorialID.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[2].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[4].Descriptor()
	// answerevent.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	answerevent.ExpectedAnswerValidator = answereventDescExpectedAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescGradedBy is the schema descriptor for graded_by field.
	answereventDescGradedBy := answereventFields[7].Descriptor()
	// answerevent.GradedByValidator is a validator for the "graded_by" field. It is called by the builders before save.
	answerevent.GradedByValidator = answereventDescGradedBy.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	qaeventMixin := schema.QAEvent{}.Mixin()
	qaeventMixinFields0 := qaeventMixin[0].Fields()
	_ = qaeventMixinFields0
	qaeventFields := schema.QAEvent{}.Fields()
	_ = qaeventFields
	// qaeventDescTimestamp is the schema descriptor for timestamp field.
	qaeventDescTimestamp := qaeventMixinFields0[1].Descriptor()
	// qaevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	qaevent.DefaultTimestamp = qaeventDescTimestamp.Default.(func() time.Time)
	// qaeventDescQuestion is the schema descriptor for question field.
	qaeventDescQuestion := qaeventFields[1].Descriptor()
	// qaevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	qaevent.QuestionValidator = qaeventDescQuestion.Validators[0].(func(string) error)
	// qaeventDescAnswer is the schema descriptor for answer field.
	qaeventDescAnswer := qaeventFields[2].Descriptor()
	// qaevent.DefaultAnswer holds the default value on creation for the answer field.
	qaevent.DefaultAnswer = qaeventDescAnswer.Default.(string)
	// qaeventDescSource is the schema descriptor for source field.
	qaeventDescSource := qaeventFields[3].Descriptor()
	// qaevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	qaevent.SourceValidator = qaeventDescSource.Validators[0].(func(string) error)
	scoreeventMixin := schema.ScoreEvent{}.Mixin()
	scoreeventMixinFields0 := scoreeventMixin[0].Fields()
	_ = scoreeventMixinFields0
	scoreeventFields := schema.ScoreEvent{}.Fields()
	_ = scoreeventFields
	// scoreeventDescTimestamp is the schema descriptor for timestamp field.
	scoreeventDescTimestamp := scoreeventMixinFields0[1].Descriptor()
	// scoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreevent.DefaultTimestamp = scoreeventDescTimestamp.Default.(func() time.Time)
	// scoreeventDescTutorialID is the schema descriptor for tutorial_id field.
	scoreeventDescTutorialID := scoreeventFields[0].Descriptor()
	// scoreevent.TutorialIDValidator is a validator for the "tutorial_id" field. It is called by the builders before save.
	scoreevent.TutorialIDValidator = scoreeventDescTutorialID.Validators[0].(func(string) error)
	// scoreeventDescFromState is the schema descriptor for from_state field.
	scoreeventDescFromState := scoreeventFields[3].Descriptor()
	// scoreevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	scoreevent.FromStateValidator = scoreeventDescFromState.Validators[0].(func(string) error)
	// scoreeventDescToState is the schema descriptor for to_state field.
	scoreeventDescToState := scoreeventFields[4].Descriptor()
	// scoreevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	scoreevent.ToStateValidator = scoreeventDescToState.Validators[0].(func(string) error)
	// scoreeventDescTrigger is the schema descriptor for trigger field.
	scoreeventDescTrigger := scoreeventFields[5].Descriptor()
	// scoreevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	scoreevent.TriggerValidator = scoreeventDescTrigger.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
