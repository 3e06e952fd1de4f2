package postgres

import (
	"context"
	"testing"
	"time"

	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedStatement struct {
	SQL  string
	Vars []any
}

// dryRunDB builds postgres statements without a connection and reports
// scripted row counts back to the repository
type dryRunDB struct {
	db         *gorm.DB
	statements []capturedStatement

	updated  int64
	existing int64
}

func newDryRunDB(t *testing.T) *dryRunDB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=pavilion dbname=pavilion sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	d := &dryRunDB{db: db}

	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:update_rows", func(tx *gorm.DB) {
		d.capture(tx)
		tx.RowsAffected = d.updated
	}))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:count_rows", func(tx *gorm.DB) {
		d.capture(tx)
		if count, ok := tx.Statement.Dest.(*int64); ok {
			*count = d.existing
			tx.RowsAffected = 1
		}
	}))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:delete_rows", d.capture))

	return d
}

func (d *dryRunDB) capture(tx *gorm.DB) {
	d.statements = append(d.statements, capturedStatement{
		SQL:  tx.Statement.SQL.String(),
		Vars: append([]any(nil), tx.Statement.Vars...),
	})
}

func TestQueueRepository_SettleOnlyUpdatesPendingEntries(t *testing.T) {
	d := newDryRunDB(t)
	d.updated = 1
	repo := NewQueueRepository(d.db)
	id := uuid.New()
	at := time.Date(2026, 5, 1, 12, 0, 5, 0, time.UTC)

	err := repo.MarkSent(context.Background(), id, entity.ResultSummary{SuccessCount: 2}, at)

	require.NoError(t, err)
	require.Len(t, d.statements, 1)

	update := d.statements[0]
	assert.Contains(t, update.SQL, `UPDATE "queue_entries" SET`)
	assert.Contains(t, update.SQL, `"status"=$1`)
	assert.Contains(t, update.SQL, `"dispatched_at"=`)
	assert.NotContains(t, update.SQL, `"error_message"`)
	assert.Contains(t, update.SQL, "WHERE id = $4 AND status = $5")

	require.Len(t, update.Vars, 5)
	assert.Equal(t, string(entity.QueueStatusSent), update.Vars[0])
	assert.Equal(t, id, update.Vars[3])
	assert.Equal(t, string(entity.QueueStatusPending), update.Vars[4])
}

func TestQueueRepository_MarkFailedKeepsPendingGuard(t *testing.T) {
	d := newDryRunDB(t)
	d.updated = 1
	repo := NewQueueRepository(d.db)
	id := uuid.New()

	err := repo.MarkFailed(context.Background(), id, "fcm unavailable", time.Now())

	require.NoError(t, err)
	require.Len(t, d.statements, 1)

	update := d.statements[0]
	assert.Contains(t, update.SQL, `"error_message"=`)
	assert.NotContains(t, update.SQL, `"result_summary"`)
	assert.Contains(t, update.SQL, "AND status = $")
	assert.Equal(t, string(entity.QueueStatusFailed), update.Vars[0])
	assert.Equal(t, string(entity.QueueStatusPending), update.Vars[len(update.Vars)-1])
}

func TestQueueRepository_SettleWithoutPendingRow(t *testing.T) {
	tests := []struct {
		name     string
		existing int64
		wantErr  error
	}{
		{name: "already settled", existing: 1, wantErr: repository.ErrQueueEntrySettled},
		{name: "removed", existing: 0, wantErr: repository.ErrQueueEntryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDryRunDB(t)
			d.existing = tt.existing
			repo := NewQueueRepository(d.db)
			id := uuid.New()

			err := repo.MarkSent(context.Background(), id, entity.ResultSummary{}, time.Now())

			assert.ErrorIs(t, err, tt.wantErr)
			require.Len(t, d.statements, 2)

			count := d.statements[1]
			assert.Equal(t, `SELECT count(*) FROM "queue_entries" WHERE id = $1`, count.SQL)
			assert.Equal(t, []any{id}, count.Vars)
		})
	}
}

func TestQueueRepository_DeleteOlderThanIncludesCutoff(t *testing.T) {
	d := newDryRunDB(t)
	repo := NewQueueRepository(d.db)
	cutoff := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.DeleteOlderThan(context.Background(), cutoff)

	require.NoError(t, err)
	require.Len(t, d.statements, 1)
	assert.Equal(t, `DELETE FROM "queue_entries" WHERE queued_at <= $1`, d.statements[0].SQL)
	assert.Equal(t, []any{cutoff}, d.statements[0].Vars)
}

func TestFailureRepository_DeleteOlderThanIncludesCutoff(t *testing.T) {
	d := newDryRunDB(t)
	repo := NewFailureRepository(d.db)
	cutoff := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.DeleteOlderThan(context.Background(), cutoff)

	require.NoError(t, err)
	require.Len(t, d.statements, 1)
	assert.Contains(t, d.statements[0].SQL, `DELETE FROM "failure_records" WHERE recorded_at <= $1`)
	assert.Equal(t, []any{cutoff}, d.statements[0].Vars)
}
