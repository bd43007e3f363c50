// Code generated by ent, DO NOT EDIT.

package scoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scoreevent type in the database.
	Label = "score_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTutorialID holds the string denoting the tutorial_id field in the database.
	FieldTutorialID = "tutorial_id"
	// FieldFromScore holds the string denoting the from_score field in the database.
	FieldFromScore = "from_score"
	// FieldToScore holds the string denoting the to_score field in the database.
	FieldToScore = "to_score"
	// FieldFromState holds the string denoting the from_state field in the database.
	FieldFromState = "from_state"
	// FieldToState holds the string denoting the to_state field in the database.
	FieldToState = "to_state"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the scoreevent in the database.
	Table = "score_events"
)

// Columns holds all SQL columns for scoreevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTutorialID,
	FieldFromScore,
	FieldToScore,
	FieldFromState,
	FieldToState,
	FieldTrigger,
	FieldSessionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// TutorialIDValidator is a validator for the "tutorial_id" field. It is called by the builders before save.
	TutorialIDValidator func(string) error
	// FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	FromStateValidator func(string) error
	// ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	ToStateValidator func(string) error
	// TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	TriggerValidator func(string) error
)

// OrderOption defines the ordering options for the ScoreEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTutorialID orders the results by the tutorial_id field.
func ByTutorialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorialID, opts...).ToFunc()
}

// ByFromScore orders the results by the from_score field.
func ByFromScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromScore, opts...).ToFunc()
}

// ByToScore orders the results by the to_score field.
func ByToScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToScore, opts...).ToFunc()
}

// ByFromState orders the results by the from_state field.
func ByFromState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromState, opts...).ToFunc()
}

// ByToState orders the results by the to_state field.
func ByToState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToState, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
