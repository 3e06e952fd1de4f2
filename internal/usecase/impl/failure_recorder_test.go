package impl

import (
	"context"
	"testing"

	"pavilion/internal/domain/entity"
	"pavilion/internal/errors"
	mockRepo "pavilion/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFailureRecorder_Record(t *testing.T) {
	failureRepo := mockRepo.NewMockFailureRepository(t)
	recorder := NewFailureRecorder(newTestLogger(), failureRepo)

	ctx := context.Background()
	entryID := uuid.New()
	tokens := []entity.FailedToken{{Token: "tB", ErrorCode: "InvalidToken"}}

	failureRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.FailureRecord) bool {
			return record.EntryID == entryID && assert.ObjectsAreEqual(tokens, record.Tokens)
		})).
		Return(nil)

	recorder.Record(ctx, entryID, tokens)
}

func TestFailureRecorder_Record_SwallowsStoreError(t *testing.T) {
	failureRepo := mockRepo.NewMockFailureRepository(t)
	recorder := NewFailureRecorder(newTestLogger(), failureRepo)

	failureRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(errors.New("disk full"))

	assert.NotPanics(t, func() {
		recorder.Record(context.Background(), uuid.New(), []entity.FailedToken{{Token: "tA", ErrorCode: "UNREGISTERED"}})
	})
}

func TestFailureRecorder_Record_EmptyListIsNoop(t *testing.T) {
	failureRepo := mockRepo.NewMockFailureRepository(t)
	recorder := NewFailureRecorder(newTestLogger(), failureRepo)

	recorder.Record(context.Background(), uuid.New(), nil)
}
