package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Coder9204/sparklab/ent"
	"github.com/Coder9204/sparklab/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := snapshotDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

func (r *snapshotRepo) LatestForLesson(ctx context.Context, lessonID string) (*Snapshot, error) {
	// The lesson id lives inside the JSON payload; scan newest-first.
	// Snapshot volume is tiny (pruned to a handful), so this is fine.
	all, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	for _, s := range all {
		snap, err := entSnapshotToSnapshot(s)
		if err != nil {
			return nil, err
		}
		if snap.Data.LessonID == lessonID {
			return snap, nil
		}
	}
	return nil, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	snapshots, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots to prune: %w", err)
	}
	ids := make([]int, 0, len(snapshots))
	for _, s := range snapshots {
		ids = append(ids, s.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func snapshotDataToMap(data SnapshotData) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("re-marshal snapshot data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
