package impl

import (
	"context"
	"testing"
	"time"

	"pavilion/config"
	"pavilion/internal/errors"
	mockRepo "pavilion/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestRetentionService(t *testing.T, maxAge time.Duration, now time.Time) (
	*retentionService,
	*mockRepo.MockQueueRepository,
	*mockRepo.MockFailureRepository,
) {
	queueRepo := mockRepo.NewMockQueueRepository(t)
	failureRepo := mockRepo.NewMockFailureRepository(t)
	cfg := &config.Config{Retention: &config.RetentionConfig{MaxAge: maxAge}}

	svc := NewRetentionService(newTestLogger(), cfg, queueRepo, failureRepo).(*retentionService)
	svc.now = func() time.Time { return now }

	return svc, queueRepo, failureRepo
}

func TestRetentionService_Sweep_UsesCutoff(t *testing.T) {
	now := time.Date(2026, 5, 2, 3, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)
	svc, queueRepo, failureRepo := createTestRetentionService(t, 24*time.Hour, now)

	queueRepo.EXPECT().DeleteOlderThan(mock.Anything, cutoff).Return(int64(3), nil)
	failureRepo.EXPECT().DeleteOlderThan(mock.Anything, cutoff).Return(int64(0), nil)

	report := svc.Sweep(context.Background())

	assert.Equal(t, cutoff, report.Cutoff)
	assert.EqualValues(t, 3, report.Queue.Deleted)
	assert.NoError(t, report.Queue.Err)
	assert.Zero(t, report.Failures.Deleted)
	assert.NoError(t, report.Failures.Err)
}

func TestRetentionService_Sweep_StoresAreIndependent(t *testing.T) {
	now := time.Date(2026, 5, 2, 3, 0, 0, 0, time.UTC)
	svc, queueRepo, failureRepo := createTestRetentionService(t, 48*time.Hour, now)

	queueRepo.EXPECT().DeleteOlderThan(mock.Anything, now.Add(-48*time.Hour)).Return(int64(0), errors.New("lock timeout"))
	failureRepo.EXPECT().DeleteOlderThan(mock.Anything, now.Add(-48*time.Hour)).Return(int64(7), nil)

	report := svc.Sweep(context.Background())

	assert.EqualError(t, report.Queue.Err, "lock timeout")
	assert.EqualValues(t, 7, report.Failures.Deleted)
}

func TestNewRetentionService_DefaultsMaxAge(t *testing.T) {
	svc := NewRetentionService(newTestLogger(), &config.Config{}, nil, nil).(*retentionService)

	assert.Equal(t, config.DefaultRetentionWindow, svc.maxAge)
}
