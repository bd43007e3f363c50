package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("tutorial_id").
			NotEmpty().
			Comment("Tutorial this question was for"),
		field.String("category").
			NotEmpty().
			Comment("review, frontier, or booster"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("expected_answer").
			NotEmpty().
			Comment("The canonical expected answer"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.String("graded_by").
			NotEmpty().
			Comment("exact, llm, or self"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("tutorial_id"),
		index.Fields("correct"),
	}
}
