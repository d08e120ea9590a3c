package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-manager/core/storage"
	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func setupTestApp(db *gorm.DB, archiver *storage.Archiver) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(db, archiver, zap.NewNop())).RegisterRoutes(app)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(setupTestDB(t), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "up", decode(t, resp)["database"])
}

func TestHandleHealth_NoDatabase(t *testing.T) {
	app := setupTestApp(nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
	assert.Equal(t, "down", decode(t, resp)["database"])
}

func TestHandleSchemaCheck(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, models.Migrate(db))
	app := setupTestApp(db, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp)["matched"])
}

func TestHandleSchemaCheck_Unmigrated(t *testing.T) {
	app := setupTestApp(setupTestDB(t), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, false, body["matched"])
	tables := body["tables"].(map[string]any)
	assert.Equal(t, "error", tables["store_books"].(map[string]any)["status"])
}

func TestHandleSchemaCheck_NoDatabase(t *testing.T) {
	app := setupTestApp(nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		resp, err := setupTestApp(nil, nil).Test(httptest.NewRequest("GET", "/health/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "disabled", decode(t, resp)["status"])
	})

	t.Run("ok", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "inventory").Return(true, nil)

		resp, err := setupTestApp(nil, storage.NewArchiver(client, "inventory")).Test(httptest.NewRequest("GET", "/health/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "ok", decode(t, resp)["status"])
	})

	t.Run("unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "inventory").Return(false, errors.New("dial tcp: refused"))

		resp, err := setupTestApp(nil, storage.NewArchiver(client, "inventory")).Test(httptest.NewRequest("GET", "/health/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, "error", decode(t, resp)["status"])
	})
}
