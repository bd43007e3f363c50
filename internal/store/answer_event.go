package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/railz/ent"
	"github.com/abhisek/railz/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("allocating sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetTutorialID(data.TutorialID).
		SetCategory(data.Category).
		SetQuestionText(data.QuestionText).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetGradedBy(data.GradedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("appending answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, tutorialID string) (time.Time, error) {
	row, err := r.client.AnswerEvent.Query().
		Where(answerevent.TutorialIDEQ(tutorialID)).
		Order(ent.Desc(answerevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("querying latest answer: %w", err)
	}
	return row.Timestamp, nil
}

func (r *eventRepo) TutorialAccuracy(ctx context.Context, tutorialID string) (float64, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.TutorialIDEQ(tutorialID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting answers: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.TutorialIDEQ(tutorialID),
			answerevent.CorrectEQ(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting correct answers: %w", err)
	}
	return float64(correct) / float64(total), nil
}

func (r *eventRepo) RecentReviewAccuracy(ctx context.Context, tutorialID string, lastN int) (float64, int, error) {
	q := r.client.AnswerEvent.Query().
		Where(
			answerevent.TutorialIDEQ(tutorialID),
			answerevent.CategoryEQ("review"),
		).
		Order(ent.Desc(answerevent.FieldSequence))
	if lastN > 0 {
		q = q.Limit(lastN)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("querying review answers: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, row := range rows {
		if row.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(rows)), len(rows), nil
}

func (r *eventRepo) StudyDays(ctx context.Context) ([]time.Time, error) {
	rows, err := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence)).
		Select(answerevent.FieldTimestamp).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying answer timestamps: %w", err)
	}

	var days []time.Time
	seen := make(map[time.Time]bool)
	for _, row := range rows {
		ts := row.Timestamp.Local()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}
