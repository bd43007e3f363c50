package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/railz/ent"
	"github.com/abhisek/railz/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using ent.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := snapshotToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("encoding snapshot data: %w", err)
	}

	created, err := r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	snap.ID = created.ID
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest snapshot: %w", err)
	}

	data, err := snapshotFromMap(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot %d: %w", row.ID, err)
	}

	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		return fmt.Errorf("prune keep must be >= 1, got %d", keep)
	}

	// Find the sequence of the Nth most recent snapshot; everything
	// older than that gets deleted.
	rows, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Limit(keep).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying snapshots for prune: %w", err)
	}
	if len(rows) < keep {
		return nil // fewer than keep snapshots exist
	}

	cutoff := rows[len(rows)-1].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("pruning snapshots: %w", err)
	}
	return nil
}

// snapshotToMap round-trips SnapshotData through JSON into the generic
// map shape the ent schema stores.
func snapshotToMap(data SnapshotData) (map[string]interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func snapshotFromMap(m map[string]interface{}) (SnapshotData, error) {
	var data SnapshotData
	raw, err := json.Marshal(m)
	if err != nil {
		return data, err
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, err
	}
	return data, nil
}
