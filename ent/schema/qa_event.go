package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QAEvent records a question answered outside of quizzes: ad-hoc questions
// appended to a tutorial's Q&A log, and interview exchanges appended to the
// learner profile.
type QAEvent struct {
	ent.Schema
}

func (QAEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QAEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("tutorial_id").
			Optional().
			Comment("Empty for interview exchanges"),
		field.String("question").NotEmpty(),
		field.String("answer").
			Default("").
			Comment("May be empty when the exchange was not persisted"),
		field.String("source").
			NotEmpty().
			Comment("ask or interview"),
	}
}

func (QAEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutorial_id"),
		index.Fields("source"),
	}
}
