package store

import (
	"context"
	"fmt"

	"github.com/abhisek/railz/ent"
	"github.com/abhisek/railz/ent/schema"
	"github.com/abhisek/railz/ent/sessionevent"
)

// eventRepo implements EventRepo using ent. All appends allocate their
// sequence number from the shared counter so ordering holds across
// event types.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("allocating sequence: %w", err)
	}

	create := r.client.SessionEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs)

	if len(data.PlanSummary) > 0 {
		slots := make([]schema.PlanSlotSummary, len(data.PlanSummary))
		for i, s := range data.PlanSummary {
			slots[i] = schema.PlanSlotSummary{
				TutorialID: s.TutorialID,
				Category:   s.Category,
			}
		}
		create = create.SetPlanSummary(slots)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("appending session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.ActionEQ("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying session summaries: %w", err)
	}

	out := make([]SessionSummaryRecord, len(rows))
	for i, row := range rows {
		out[i] = SessionSummaryRecord{
			SessionID:       row.SessionID,
			Timestamp:       row.Timestamp,
			QuestionsServed: row.QuestionsServed,
			CorrectAnswers:  row.CorrectAnswers,
			DurationSecs:    row.DurationSecs,
		}
	}
	return out, nil
}
