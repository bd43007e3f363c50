package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQAEvent(ctx context.Context, data QAEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("allocating sequence: %w", err)
	}

	create := r.client.QAEvent.Create().
		SetSequence(seq).
		SetQuestion(data.Question).
		SetAnswer(data.Answer).
		SetSource(data.Source)
	if data.TutorialID != "" {
		create = create.SetTutorialID(data.TutorialID)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("appending qa event: %w", err)
	}
	return nil
}
