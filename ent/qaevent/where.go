// Code generated by ent, DO NOT EDIT.

package qaevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/railz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TutorialID applies equality check predicate on the "tutorial_id" field. It's identical to TutorialIDEQ.
func TutorialID(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldTutorialID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldAnswer, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TutorialIDEQ applies the EQ predicate on the "tutorial_id" field.
func TutorialIDEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldTutorialID, v))
}

// TutorialIDNEQ applies the NEQ predicate on the "tutorial_id" field.
func TutorialIDNEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldTutorialID, v))
}

// TutorialIDIn applies the In predicate on the "tutorial_id" field.
func TutorialIDIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldTutorialID, vs...))
}

// TutorialIDNotIn applies the NotIn predicate on the "tutorial_id" field.
func TutorialIDNotIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldTutorialID, vs...))
}

// TutorialIDGT applies the GT predicate on the "tutorial_id" field.
func TutorialIDGT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldTutorialID, v))
}

// TutorialIDGTE applies the GTE predicate on the "tutorial_id" field.
func TutorialIDGTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldTutorialID, v))
}

// TutorialIDLT applies the LT predicate on the "tutorial_id" field.
func TutorialIDLT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldTutorialID, v))
}

// TutorialIDLTE applies the LTE predicate on the "tutorial_id" field.
func TutorialIDLTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldTutorialID, v))
}

// TutorialIDContains applies the Contains predicate on the "tutorial_id" field.
func TutorialIDContains(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContains(FieldTutorialID, v))
}

// TutorialIDHasPrefix applies the HasPrefix predicate on the "tutorial_id" field.
func TutorialIDHasPrefix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasPrefix(FieldTutorialID, v))
}

// TutorialIDHasSuffix applies the HasSuffix predicate on the "tutorial_id" field.
func TutorialIDHasSuffix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasSuffix(FieldTutorialID, v))
}

// TutorialIDIsNil applies the IsNil predicate on the "tutorial_id" field.
func TutorialIDIsNil() predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIsNull(FieldTutorialID))
}

// TutorialIDNotNil applies the NotNil predicate on the "tutorial_id" field.
func TutorialIDNotNil() predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotNull(FieldTutorialID))
}

// TutorialIDEqualFold applies the EqualFold predicate on the "tutorial_id" field.
func TutorialIDEqualFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEqualFold(FieldTutorialID, v))
}

// TutorialIDContainsFold applies the ContainsFold predicate on the "tutorial_id" field.
func TutorialIDContainsFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContainsFold(FieldTutorialID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.QAEvent {
	return predicate.QAEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QAEvent) predicate.QAEvent {
	return predicate.QAEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QAEvent) predicate.QAEvent {
	return predicate.QAEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QAEvent) predicate.QAEvent {
	return predicate.QAEvent(sql.NotPredicates(p))
}
