package inventory

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-manager/core/middleware/limiter"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const header = "store_name,store_address,book_name,pages,author_name,price\n"

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db := setupTestDB(t)
	svc := NewService(db, zap.NewNop(), nil, nil, nil)
	app := fiber.New()
	NewHandler(svc, limiter.New(2, time.Second)).RegisterRoutes(app)
	return app
}

func uploadRequest(t *testing.T, field, filename, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/inventory/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleUpload_Success(t *testing.T) {
	app := setupTestApp(t)

	csv := header +
		"Alpha,1 Main,Go Basics,200,Jane,9.99\n" +
		"Alpha,1 Main,Go Basics,200,Jane,12.50\n"

	resp, err := app.Test(uploadRequest(t, "csv", "inventory.csv", csv))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "CSV processed successfully", body["message"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["total_records"])
	assert.Equal(t, float64(1), summary["created"])
	assert.Equal(t, float64(1), summary["updated"])
	assert.Equal(t, float64(0), summary["errors"])
	_, hasErrors := body["errors"]
	assert.False(t, hasErrors)
}

func TestHandleUpload_ValidationError(t *testing.T) {
	app := setupTestApp(t)

	csv := header +
		"Alpha,1 Main,Go Basics,200,Jane,9.99\n" +
		"Alpha,1 Main,Rust,abc,Jane,9.99\n"

	resp, err := app.Test(uploadRequest(t, "csv", "inventory.csv", csv))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Validation Error", body["error"])
	assert.Contains(t, body["message"], "Row 2")
	assert.Contains(t, body["message"], "abc")
}

func TestHandleUpload_MissingFile(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(uploadRequest(t, "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "CSV file is required", decode(t, resp)["error"])
}

func TestHandleUpload_WrongType(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(uploadRequest(t, "csv", "inventory.txt", header))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid file type", decode(t, resp)["error"])
}

func TestIsCSV(t *testing.T) {
	assert.True(t, isCSV("stock.CSV", ""))
	assert.True(t, isCSV("export", "text/csv; charset=utf-8"))
	assert.True(t, isCSV("export.bin", "application/vnd.ms-excel"))
	assert.False(t, isCSV("stock.xlsx", "application/octet-stream"))
}
