package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"billed/internal/dto"
	"billed/internal/models"
	"billed/internal/newbill"
	"billed/internal/repository"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidReceipt = errors.New("only jpg, jpeg and png receipts are accepted")
	ErrInvalidBill    = errors.New("invalid bill")
	ErrBillNotFound   = errors.New("bill not found")
)

// MaxReceiptSize bounds an uploaded receipt.
const MaxReceiptSize = 10 << 20

type BillRepository interface {
	Create(ctx context.Context, bill *models.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error)
	List(ctx context.Context, email string, limit, offset int) ([]*models.Bill, error)
}

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.Receipt) error
}

type BillService struct {
	billRepo    BillRepository
	receiptRepo ReceiptRepository
	uploadDir   string
	logger      *zap.Logger
	now         func() time.Time
}

func NewBillService(billRepo BillRepository, receiptRepo ReceiptRepository, uploadDir string, logger *zap.Logger) *BillService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &BillService{
		billRepo:    billRepo,
		receiptRepo: receiptRepo,
		uploadDir:   uploadDir,
		logger:      logger,
		now:         time.Now,
	}
}

// UploadReceipt checks the receipt's name and content type, saves it under
// the upload directory and records it.
func (s *BillService) UploadReceipt(ctx context.Context, email string, file io.Reader, fileName string) (*dto.ReceiptResponse, error) {
	if newbill.Classify(fileName) == newbill.Rejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReceipt, fileName)
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxReceiptSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt: %w", err)
	}
	if len(content) > MaxReceiptSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidReceipt, MaxReceiptSize)
	}

	mtype := mimetype.Detect(content)
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		return nil, fmt.Errorf("%w: detected %s", ErrInvalidReceipt, mtype.String())
	}

	fileID := uuid.New()
	newFileName := fileID.String() + strings.ToLower(filepath.Ext(fileName))
	filePath := filepath.Join(s.uploadDir, newFileName)

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	receipt := &models.Receipt{
		ID:        fileID,
		Email:     email,
		FileName:  fileName,
		FileSize:  int64(len(content)),
		FileURL:   "/uploads/" + newFileName,
		MIMEType:  mtype.String(),
		CreatedAt: s.now(),
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create receipt record: %w", err)
	}

	s.logger.Info("Receipt stored",
		zap.String("key", receipt.ID.String()),
		zap.String("email", email),
		zap.Int64("size", receipt.FileSize),
		zap.String("mime_type", receipt.MIMEType),
	)

	return &dto.ReceiptResponse{
		FileURL:  receipt.FileURL,
		FileName: receipt.FileName,
		Key:      receipt.ID.String(),
	}, nil
}

// CreateBill stores a new bill. The status defaults to pending.
func (s *BillService) CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidBill)
	}
	if strings.TrimSpace(req.Name) == "" && strings.TrimSpace(req.Type) == "" {
		return nil, fmt.Errorf("%w: type or name is required", ErrInvalidBill)
	}

	status := models.BillStatus(req.Status)
	switch status {
	case "":
		status = models.BillStatusPending
	case models.BillStatusPending, models.BillStatusAccepted, models.BillStatusRefused:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidBill, req.Status)
	}

	now := s.now()
	bill := &models.Bill{
		ID:         uuid.New(),
		Email:      req.Email,
		Type:       sanitizeUTF8(req.Type),
		Name:       sanitizeUTF8(req.Name),
		Amount:     req.Amount,
		Date:       req.Date,
		VAT:        req.VAT,
		Pct:        req.Pct,
		Commentary: sanitizeUTF8(req.Commentary),
		FileURL:    req.FileURL,
		FileName:   req.FileName,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	s.logger.Info("Bill created", zap.String("bill_id", bill.ID.String()), zap.String("email", bill.Email))

	return toBillResponse(bill), nil
}

func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*dto.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// ListBills lists the bills of email, every bill when email is empty.
func (s *BillService) ListBills(ctx context.Context, email string, limit, offset int) ([]*dto.BillResponse, error) {
	bills, err := s.billRepo.List(ctx, email, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BillResponse, len(bills))
	for i, bill := range bills {
		responses[i] = toBillResponse(bill)
	}
	return responses, nil
}

func toBillResponse(bill *models.Bill) *dto.BillResponse {
	return &dto.BillResponse{
		ID:         bill.ID.String(),
		Email:      bill.Email,
		Type:       bill.Type,
		Name:       bill.Name,
		Amount:     bill.Amount,
		Date:       bill.Date,
		VAT:        bill.VAT,
		Pct:        bill.Pct,
		Commentary: bill.Commentary,
		FileURL:    bill.FileURL,
		FileName:   bill.FileName,
		Status:     string(bill.Status),
		CreatedAt:  bill.CreatedAt.Format(time.RFC3339),
	}
}

