package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records an understanding-score transition for audit and stats.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("tutorial_id").NotEmpty(),
		field.Int("from_score").
			Comment("-1 when the tutorial was previously unscored"),
		field.Int("to_score"),
		field.String("from_state").NotEmpty(),
		field.String("to_state").NotEmpty(),
		field.String("trigger").NotEmpty(),
		field.String("session_id").Optional(),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutorial_id"),
	}
}
