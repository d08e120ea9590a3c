package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/cache"
	"inventory-manager/core/events"
	"inventory-manager/core/storage"
	"inventory-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingCache struct {
	cache.Nop
	deleted []string
}

func (r *recordingCache) Delete(_ context.Context, keys ...string) error {
	r.deleted = append(r.deleted, keys...)
	return nil
}

type recordingPublisher struct {
	events.Nop
	published []any
	err       error
}

func (r *recordingPublisher) Publish(_ context.Context, v any) error {
	r.published = append(r.published, v)
	return r.err
}

func TestService_Ingest(t *testing.T) {
	db := setupTestDB(t)
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "inventory", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "uploads/2024-03-01/") && strings.HasSuffix(name, ".csv")
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	c := &recordingCache{}
	pub := &recordingPublisher{}
	svc := NewService(db, zap.NewNop(), storage.NewArchiver(client, "inventory"), c, pub)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	csv := header +
		"Alpha,1 Main,Go,200,Jane,9.99\n" +
		"Beta,2 Side,Go,200,Jane,9.99\n"

	summary, err := svc.Ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.NotEmpty(t, summary.UploadID)
	assert.Equal(t, 2, summary.Created)

	client.AssertNumberOfCalls(t, "PutObject", 1)
	assert.Len(t, c.deleted, 2)
	assert.Equal(t, cache.ReportKey(summary.StoreIDs[0]), c.deleted[0])

	require.Len(t, pub.published, 1)
	evt := pub.published[0].(events.Ingested)
	assert.Equal(t, summary.UploadID, evt.UploadID)
	assert.Equal(t, 2, evt.TotalRecords)
	assert.Equal(t, 2, evt.Created)
}

func TestService_SideEffectFailuresAreNotFatal(t *testing.T) {
	db := setupTestDB(t)
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))
	pub := &recordingPublisher{err: errors.New("channel closed")}

	svc := NewService(db, zap.NewNop(), storage.NewArchiver(client, "inventory"), nil, pub)
	summary, err := svc.Ingest(context.Background(), strings.NewReader(header+"Alpha,1 Main,Go,200,Jane,9.99\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
}

func TestService_ValidationFailureHasNoSideEffects(t *testing.T) {
	db := setupTestDB(t)
	client := new(mocks.Client)
	pub := &recordingPublisher{}
	c := &recordingCache{}

	svc := NewService(db, zap.NewNop(), storage.NewArchiver(client, "inventory"), c, pub)
	_, err := svc.Ingest(context.Background(), strings.NewReader(header+"Alpha,1 Main,Go,0,Jane,9.99\n"))
	assert.ErrorIs(t, err, ErrValidation)

	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, pub.published)
	assert.Empty(t, c.deleted)
}
