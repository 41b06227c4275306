package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"billed/internal/dto"
	"billed/internal/models"
	"billed/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

type memBills struct {
	mu      sync.Mutex
	bills   []*models.Bill
	failErr error
}

func (m *memBills) Create(_ context.Context, bill *models.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.bills = append(m.bills, bill)
	return nil
}

func (m *memBills) GetByID(_ context.Context, id uuid.UUID) (*models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memBills) List(_ context.Context, email string, _, _ int) ([]*models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []*models.Bill
	for _, b := range m.bills {
		if email == "" || b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

type memReceipts struct {
	receipts []*models.Receipt
	failErr  error
}

func (m *memReceipts) Create(_ context.Context, r *models.Receipt) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.receipts = append(m.receipts, r)
	return nil
}

func newTestService(t *testing.T) (*BillService, *memBills, *memReceipts, string) {
	t.Helper()
	dir := t.TempDir()
	bills := &memBills{}
	receipts := &memReceipts{}
	svc := NewBillService(bills, receipts, dir, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2022, 4, 4, 10, 0, 0, 0, time.UTC) }
	return svc, bills, receipts, dir
}

func TestUploadReceipt_StoresImage(t *testing.T) {
	svc, _, receipts, dir := newTestService(t)

	resp, err := svc.UploadReceipt(context.Background(), "a@a", bytes.NewReader(pngBytes), "Scan.PNG")
	require.NoError(t, err)

	assert.Equal(t, "Scan.PNG", resp.FileName)
	assert.NotEmpty(t, resp.Key)
	assert.Equal(t, "/uploads/"+resp.Key+".png", resp.FileURL)

	require.Len(t, receipts.receipts, 1)
	assert.Equal(t, "image/png", receipts.receipts[0].MIMEType)
	assert.Equal(t, "a@a", receipts.receipts[0].Email)

	saved, err := os.ReadFile(filepath.Join(dir, resp.Key+".png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, saved)
}

func TestUploadReceipt_AcceptsJPEG(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.UploadReceipt(context.Background(), "a@a", bytes.NewReader(jpegBytes), "image.jpeg")
	assert.NoError(t, err)
}

func TestUploadReceipt_RejectsExtension(t *testing.T) {
	svc, _, receipts, _ := newTestService(t)

	_, err := svc.UploadReceipt(context.Background(), "a@a", bytes.NewReader([]byte("%PDF-1.4")), "document.pdf")
	assert.ErrorIs(t, err, ErrInvalidReceipt)
	assert.Empty(t, receipts.receipts)
}

func TestUploadReceipt_RejectsDisguisedContent(t *testing.T) {
	svc, _, _, dir := newTestService(t)

	_, err := svc.UploadReceipt(context.Background(), "a@a", bytes.NewReader([]byte("%PDF-1.4 not an image")), "image.jpg")
	assert.ErrorIs(t, err, ErrInvalidReceipt)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestUploadReceipt_RemovesFileWhenRecordFails(t *testing.T) {
	svc, _, receipts, dir := newTestService(t)
	receipts.failErr = errors.New("db down")

	_, err := svc.UploadReceipt(context.Background(), "a@a", bytes.NewReader(pngBytes), "image.png")
	require.Error(t, err)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestCreateBill_DefaultsToPending(t *testing.T) {
	svc, bills, _, _ := newTestService(t)

	resp, err := svc.CreateBill(context.Background(), &dto.CreateBillRequest{
		Email:    "a@a",
		Type:     "Transports",
		Name:     "  taxi \xff",
		Amount:   30,
		Date:     "2022-04-04",
		Pct:      20,
		FileURL:  "/uploads/k.jpg",
		FileName: "image.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "taxi", resp.Name)
	assert.Equal(t, "2022-04-04T10:00:00Z", resp.CreatedAt)
	require.Len(t, bills.bills, 1)
	assert.Equal(t, models.BillStatusPending, bills.bills[0].Status)
}

func TestCreateBill_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CreateBill(context.Background(), &dto.CreateBillRequest{Name: "taxi"})
	assert.ErrorIs(t, err, ErrInvalidBill)

	_, err = svc.CreateBill(context.Background(), &dto.CreateBillRequest{Email: "a@a"})
	assert.ErrorIs(t, err, ErrInvalidBill)

	_, err = svc.CreateBill(context.Background(), &dto.CreateBillRequest{Email: "a@a", Name: "taxi", Status: "paid"})
	assert.ErrorIs(t, err, ErrInvalidBill)
}

func TestGetBill_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetBill(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestListBills_ByEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBill(ctx, &dto.CreateBillRequest{Email: "a@a", Name: "one"})
	require.NoError(t, err)
	_, err = svc.CreateBill(ctx, &dto.CreateBillRequest{Email: "b@b", Name: "two"})
	require.NoError(t, err)

	mine, err := svc.ListBills(ctx, "a@a", 0, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "one", mine[0].Name)

	all, err := svc.ListBills(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
