package handlers_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-invoice-maker/internal/database"
	"go-invoice-maker/internal/handlers"
)

func TestSystemHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", handlers.NewSystemHandler("sqlite").Health)

	w := doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "online", resp["status"])
	assert.Equal(t, "sqlite", resp["store"])
}

func TestReportHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(MockInvoiceService)
	r := gin.New()
	r.GET("/api/reports/summary", handlers.NewReportHandler(svc).GetSummary)

	svc.On("Summary", mock.Anything).Return(&database.SummaryReport{TotalInvoices: 2, GrandTotal: 472}, nil).Once()
	svc.On("Summary", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := doRequest(r, http.MethodGet, "/api/reports/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(2), resp["total_invoices"])
	assert.Equal(t, float64(472), resp["grand_total"])

	w = doRequest(r, http.MethodGet, "/api/reports/summary", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler_UploadLogo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	r.POST("/api/uploads", handlers.NewUploadHandler(dir, "http://localhost:8080/").UploadLogo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "logo.PNG", []byte("fake png")))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	url := resp["url"].(string)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	path := resp["path"].(string)
	assert.Equal(t, dir, filepath.Dir(path))
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake png", string(saved))
}

func TestUploadHandler_Rejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/uploads", handlers.NewUploadHandler(t.TempDir(), "http://localhost:8080").UploadLogo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "script.sh", []byte("echo")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/uploads", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decode(t, w)["error"])
}
