package repository

import (
	"context"

	"billed/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type ReceiptRepository struct {
	db     DB
	logger *zap.Logger
}

func NewReceiptRepository(db DB, logger *zap.Logger) *ReceiptRepository {
	return &ReceiptRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	query := squirrel.Insert("receipts").
		Columns("id", "email", "file_name", "file_size", "file_url", "mime_type", "created_at").
		Values(receipt.ID, receipt.Email, receipt.FileName, receipt.FileSize, receipt.FileURL, receipt.MIMEType, receipt.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
