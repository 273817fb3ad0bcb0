package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/handlers"
	"portfolio-api/cmd/api/services"
	"portfolio-api/config"
	"portfolio-api/storage"
)

func TestParseAction(t *testing.T) {
	assert.Equal(t, handlers.ActionImages, handlers.ParseAction("images"))
	assert.Equal(t, handlers.ActionItems, handlers.ParseAction("items"))
	// 비어 있거나 알 수 없는 값은 items 로 떨어지는 것이 계약이다.
	assert.Equal(t, handlers.ActionItems, handlers.ParseAction(""))
	assert.Equal(t, handlers.ActionItems, handlers.ParseAction("IMAGES"))
	assert.Equal(t, handlers.ActionItems, handlers.ParseAction("bogus"))
}

// newTestRouter stands up a gin engine over a LocalStore fixture.
func newTestRouter(t *testing.T, dir, sheetName string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	items, err := services.NewPortfolioService(store,
		config.SheetConfig{Name: sheetName, HasDateColumn: false, Timezone: "Asia/Tokyo"},
		config.StorageConfig{WorkbookKey: "portfolio.xlsx"},
	)
	require.NoError(t, err)
	gallery := services.NewGalleryService(store, "images/")

	r := gin.New()
	r.GET("/api/v1/portfolio", handlers.PortfolioHandler(items, gallery))
	r.GET("/health", handlers.HealthHandler(store))
	return r
}

func writeFixtureWorkbook(t *testing.T, dir string, titles []string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("portfolio")
	require.NoError(t, err)
	require.NoError(t, f.SetCellStr("portfolio", "A1", "title"))
	for i, title := range titles {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellStr("portfolio", axis, title))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, "portfolio.xlsx")))
}

func TestPortfolioHandlerItems(t *testing.T) {
	dir := t.TempDir()
	writeFixtureWorkbook(t, dir, []string{"Alpha", "Beta"})
	r := newTestRouter(t, dir, "portfolio")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var items []dto.PortfolioItemDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].ID)
	assert.Equal(t, "Alpha", items[0].Title)
	assert.Equal(t, 1, items[1].ID)
}

func TestPortfolioHandlerUnknownActionDefaultsToItems(t *testing.T) {
	dir := t.TempDir()
	writeFixtureWorkbook(t, dir, []string{"Alpha"})
	r := newTestRouter(t, dir, "portfolio")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio?action=bogus", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []dto.PortfolioItemDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestPortfolioHandlerErrorEnvelope(t *testing.T) {
	dir := t.TempDir()
	// 워크북 자체가 없으므로 items 액션은 실패해야 한다.
	r := newTestRouter(t, dir, "portfolio")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil)
	r.ServeHTTP(w, req)

	// 전송 상태는 200, 실패는 바디로만 드러난다.
	require.Equal(t, http.StatusOK, w.Code)

	var envelope dto.ErrorEnvelopeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Error)
	assert.Equal(t, http.StatusInternalServerError, envelope.StatusCode)
	assert.NotEmpty(t, envelope.Message)
}

func TestPortfolioHandlerImagesAction(t *testing.T) {
	dir := t.TempDir()
	writeFixtureWorkbook(t, dir, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "cover.png"), pngBytes, 0o644))
	r := newTestRouter(t, dir, "portfolio")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio?action=images", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var images []dto.ImageFileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, "images/cover.png", images[0].Name)
	assert.Equal(t, "image/png", images[0].MimeType)
}

func TestHealthHandler(t *testing.T) {
	dir := t.TempDir()
	r := newTestRouter(t, dir, "portfolio")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var health dto.HealthDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}
