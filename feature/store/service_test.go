package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"inventory-manager/core/cache"
	"inventory-manager/core/storage"
	"inventory-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryCache keeps JSON values in a map, like the Redis cache does.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
	gets   int
	sets   int
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return false, m.getErr
	}
	data, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (m *memoryCache) Set(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.sets++
	m.values[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func TestService_ListStores(t *testing.T) {
	db := setupTestDB(t)
	s := seed{db: db, t: t}
	s.store("Beta", "2 Side")
	s.store("Alpha", "1 Main")

	stores, err := NewService(db, zap.NewNop(), 5, nil, nil).ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Alpha", stores[0].Name)
	assert.Equal(t, "Beta", stores[1].Name)
}

func TestService_ListStores_Empty(t *testing.T) {
	stores, err := NewService(setupTestDB(t), zap.NewNop(), 5, nil, nil).ListStores(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stores)
	assert.Empty(t, stores)
}

func TestService_ReportIsCached(t *testing.T) {
	db := setupTestDB(t)
	s := seed{db: db, t: t}
	st := s.store("Alpha", "1 Main")
	s.list(st, s.book("Go", s.author("Jane")), "9.99", false)

	c := newMemoryCache()
	svc := NewService(db, zap.NewNop(), 5, c, nil)

	first, err := svc.Report(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.sets)
	_, ok := c.values[cache.ReportKey(st.ID)]
	assert.True(t, ok)

	// Drop the listing behind the cache's back; the cached copy is still served.
	require.NoError(t, db.Exec("DELETE FROM store_books").Error)

	second, err := svc.Report(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.sets)
	require.Len(t, second.TopPriced, 1)
	assert.Equal(t, first.TopPriced[0].Title, second.TopPriced[0].Title)
	assert.True(t, first.TopPriced[0].Price.Equal(second.TopPriced[0].Price))
}

func TestService_ReportCacheErrorFallsBackToBuild(t *testing.T) {
	db := setupTestDB(t)
	st := seed{db: db, t: t}.store("Alpha", "1 Main")

	c := newMemoryCache()
	c.getErr = errors.New("redis down")

	r, err := NewService(db, zap.NewNop(), 5, c, nil).Report(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", r.Store.Name)
}

func TestService_ReportNotFoundIsNotCached(t *testing.T) {
	c := newMemoryCache()
	_, err := NewService(setupTestDB(t), zap.NewNop(), 5, c, nil).Report(context.Background(), 9)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Equal(t, 0, c.sets)
}

func TestService_RenderReportArchives(t *testing.T) {
	db := setupTestDB(t)
	st := seed{db: db, t: t}.store("Downtown Books", "1 Main")

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "inventory", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "reports/1/Downtown-Books-Report-") && strings.HasSuffix(name, ".pdf")
	}), mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/pdf"
	})).Return(minio.UploadInfo{}, nil)

	svc := NewService(db, zap.NewNop(), 5, nil, storage.NewArchiver(client, "inventory"))
	filename, data, err := svc.RenderReport(context.Background(), st.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "Downtown-Books-Report-"))
	assert.NotEmpty(t, data)
	client.AssertExpectations(t)
}

func TestService_RenderReportArchiveFailureIsNotFatal(t *testing.T) {
	db := setupTestDB(t)
	st := seed{db: db, t: t}.store("Alpha", "1 Main")

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	svc := NewService(db, zap.NewNop(), 5, nil, storage.NewArchiver(client, "inventory"))
	_, data, err := svc.RenderReport(context.Background(), st.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
