package store

import (
	"context"
	"fmt"

	"github.com/abhisek/railz/ent"
	"github.com/abhisek/railz/ent/scoreevent"
)

func (r *eventRepo) AppendScoreEvent(ctx context.Context, data ScoreEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("allocating sequence: %w", err)
	}

	create := r.client.ScoreEvent.Create().
		SetSequence(seq).
		SetTutorialID(data.TutorialID).
		SetFromScore(data.FromScore).
		SetToScore(data.ToScore).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetTrigger(data.Trigger)
	if data.SessionID != "" {
		create = create.SetSessionID(data.SessionID)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("appending score event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScoreEvents(ctx context.Context, tutorialID string, opts QueryOpts) ([]ScoreEventRecord, error) {
	q := r.client.ScoreEvent.Query().
		Order(ent.Desc(scoreevent.FieldSequence))

	if tutorialID != "" {
		q = q.Where(scoreevent.TutorialIDEQ(tutorialID))
	}
	if opts.After > 0 {
		q = q.Where(scoreevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(scoreevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(scoreevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(scoreevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying score events: %w", err)
	}

	out := make([]ScoreEventRecord, len(rows))
	for i, row := range rows {
		out[i] = ScoreEventRecord{
			TutorialID: row.TutorialID,
			FromScore:  row.FromScore,
			ToScore:    row.ToScore,
			FromState:  row.FromState,
			ToState:    row.ToState,
			Trigger:    row.Trigger,
			SessionID:  row.SessionID,
			Sequence:   row.Sequence,
			Timestamp:  row.Timestamp,
		}
	}
	return out, nil
}
