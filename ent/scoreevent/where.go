// Code generated by ent, DO NOT EDIT.

package scoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/railz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TutorialID applies equality check predicate on the "tutorial_id" field. It's identical to TutorialIDEQ.
func TutorialID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTutorialID, v))
}

// FromScore applies equality check predicate on the "from_score" field. It's identical to FromScoreEQ.
func FromScore(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldFromScore, v))
}

// ToScore applies equality check predicate on the "to_score" field. It's identical to ToScoreEQ.
func ToScore(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldToScore, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldToState, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTrigger, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TutorialIDEQ applies the EQ predicate on the "tutorial_id" field.
func TutorialIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTutorialID, v))
}

// TutorialIDNEQ applies the NEQ predicate on the "tutorial_id" field.
func TutorialIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTutorialID, v))
}

// TutorialIDIn applies the In predicate on the "tutorial_id" field.
func TutorialIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTutorialID, vs...))
}

// TutorialIDNotIn applies the NotIn predicate on the "tutorial_id" field.
func TutorialIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTutorialID, vs...))
}

// TutorialIDGT applies the GT predicate on the "tutorial_id" field.
func TutorialIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTutorialID, v))
}

// TutorialIDGTE applies the GTE predicate on the "tutorial_id" field.
func TutorialIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTutorialID, v))
}

// TutorialIDLT applies the LT predicate on the "tutorial_id" field.
func TutorialIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTutorialID, v))
}

// TutorialIDLTE applies the LTE predicate on the "tutorial_id" field.
func TutorialIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTutorialID, v))
}

// TutorialIDContains applies the Contains predicate on the "tutorial_id" field.
func TutorialIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldTutorialID, v))
}

// TutorialIDHasPrefix applies the HasPrefix predicate on the "tutorial_id" field.
func TutorialIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldTutorialID, v))
}

// TutorialIDHasSuffix applies the HasSuffix predicate on the "tutorial_id" field.
func TutorialIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldTutorialID, v))
}

// TutorialIDEqualFold applies the EqualFold predicate on the "tutorial_id" field.
func TutorialIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldTutorialID, v))
}

// TutorialIDContainsFold applies the ContainsFold predicate on the "tutorial_id" field.
func TutorialIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldTutorialID, v))
}

// FromScoreEQ applies the EQ predicate on the "from_score" field.
func FromScoreEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldFromScore, v))
}

// FromScoreNEQ applies the NEQ predicate on the "from_score" field.
func FromScoreNEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldFromScore, v))
}

// FromScoreIn applies the In predicate on the "from_score" field.
func FromScoreIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldFromScore, vs...))
}

// FromScoreNotIn applies the NotIn predicate on the "from_score" field.
func FromScoreNotIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldFromScore, vs...))
}

// FromScoreGT applies the GT predicate on the "from_score" field.
func FromScoreGT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldFromScore, v))
}

// FromScoreGTE applies the GTE predicate on the "from_score" field.
func FromScoreGTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldFromScore, v))
}

// FromScoreLT applies the LT predicate on the "from_score" field.
func FromScoreLT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldFromScore, v))
}

// FromScoreLTE applies the LTE predicate on the "from_score" field.
func FromScoreLTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldFromScore, v))
}

// ToScoreEQ applies the EQ predicate on the "to_score" field.
func ToScoreEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldToScore, v))
}

// ToScoreNEQ applies the NEQ predicate on the "to_score" field.
func ToScoreNEQ(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldToScore, v))
}

// ToScoreIn applies the In predicate on the "to_score" field.
func ToScoreIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldToScore, vs...))
}

// ToScoreNotIn applies the NotIn predicate on the "to_score" field.
func ToScoreNotIn(vs ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldToScore, vs...))
}

// ToScoreGT applies the GT predicate on the "to_score" field.
func ToScoreGT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldToScore, v))
}

// ToScoreGTE applies the GTE predicate on the "to_score" field.
func ToScoreGTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldToScore, v))
}

// ToScoreLT applies the LT predicate on the "to_score" field.
func ToScoreLT(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldToScore, v))
}

// ToScoreLTE applies the LTE predicate on the "to_score" field.
func ToScoreLTE(v int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldToScore, v))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldToState, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.NotPredicates(p))
}
