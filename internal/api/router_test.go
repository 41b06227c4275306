package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"billed/internal/api/handlers"
	"billed/internal/dto"
	"billed/internal/models"
	"billed/internal/repository"
	"billed/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type billRepo struct {
	mu      sync.Mutex
	bills   []*models.Bill
	listErr error
}

func (r *billRepo) Create(_ context.Context, b *models.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = append(r.bills, b)
	return nil
}

func (r *billRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *billRepo) List(_ context.Context, email string, _, _ int) ([]*models.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.Bill
	for _, b := range r.bills {
		if email == "" || b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

type receiptRepo struct{}

func (receiptRepo) Create(context.Context, *models.Receipt) error { return nil }

func newTestApp(t *testing.T) (*fiber.App, *billRepo) {
	t.Helper()
	bills := &billRepo{}
	dir := t.TempDir()
	logger := zap.NewNop()
	svc := service.NewBillService(bills, receiptRepo{}, dir, logger)
	app := SetupRouter(handlers.NewBillHandler(svc, logger), handlers.NewPageHandler(svc, logger), dir, logger)
	return app, bills
}

func multipartBody(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("email", "a@a"))
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func TestUploadReceipt(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartBody(t, "image.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/receipts", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	receipt := decode[dto.ReceiptResponse](t, resp)
	assert.Equal(t, "image.png", receipt.FileName)
	assert.NotEmpty(t, receipt.Key)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, receipt.FileURL, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadReceipt_RejectsPDF(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartBody(t, "document.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills/receipts", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadReceipt_MissingFile(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/bills/receipts", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAndListBills(t *testing.T) {
	app, _ := newTestApp(t)

	payload, _ := json.Marshal(dto.CreateBillRequest{Email: "a@a", Type: "Transports", Name: "taxi", Amount: 30, Date: "2022-01-01", Pct: 20})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.BillResponse](t, resp)
	assert.Equal(t, "pending", created.Status)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/bills?email=a@a", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decode[[]dto.BillResponse](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/bills/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateBill_Invalid(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills", bytes.NewReader([]byte(`{"name":"taxi"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetBill_Errors(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/bills/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/bills/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Bill not found", decode[dto.ErrorResponse](t, resp).Error)
}

func TestBillsPage(t *testing.T) {
	app, bills := newTestApp(t)
	bills.bills = append(bills.bills, &models.Bill{ID: uuid.New(), Email: "a@a", Name: "encore", Date: "2004-04-04", Status: models.BillStatusPending})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bills?email=a@a", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), "Mes notes de frais")
	assert.Contains(t, string(html), "4 Avr. 04")
}

func TestBillsPage_StoreFailure(t *testing.T) {
	app, bills := newTestApp(t)
	bills.listErr = errors.New("connection refused")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bills", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), "Erreur 500")
}

func TestNewBillPage(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(html), `data-testid="form-new-bill"`)
}
