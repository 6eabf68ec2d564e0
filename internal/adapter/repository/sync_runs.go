package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SyncRunRepo persists the audit trail of repository syncs.
type SyncRunRepo struct {
	pool *pgxpool.Pool
}

func NewSyncRunRepo(pool *pgxpool.Pool) *SyncRunRepo {
	return &SyncRunRepo{pool: pool}
}

// Save inserts a finished run. Errors are stored as a JSON array.
func (r *SyncRunRepo) Save(ctx context.Context, run *domain.SyncRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.Errors == nil {
		run.Errors = []string{}
	}
	errs, err := json.Marshal(run.Errors)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO sync_runs (id, username, success, synced, created, updated, errors, started_at, finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		run.ID, run.Username, run.Success, run.Synced, run.Created, run.Updated, errs, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert sync run: %w", err)
	}
	return nil
}

// ListRecent returns at most limit runs, newest first.
func (r *SyncRunRepo) ListRecent(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.SyncRun
	err := queryJSON(ctx, r.pool, &out, `SELECT coalesce(json_agg(row_to_json(s) ORDER BY s.started_at DESC), '[]')
		FROM (SELECT id, username, success, synced, created, updated, errors, started_at, finished_at
		      FROM sync_runs ORDER BY started_at DESC LIMIT $1) s`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	return out, nil
}
