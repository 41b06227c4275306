package repository

import (
	"context"
	"errors"

	"billed/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

var billColumns = []string{
	"id", "email", "type", "name", "amount", "date", "vat", "pct",
	"commentary", "file_url", "file_name", "status", "created_at", "updated_at",
}

type BillRepository struct {
	db     DB
	logger *zap.Logger
}

func NewBillRepository(db DB, logger *zap.Logger) *BillRepository {
	return &BillRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	query := squirrel.Insert("bills").
		Columns(billColumns...).
		Values(bill.ID, bill.Email, bill.Type, bill.Name, bill.Amount, bill.Date, bill.VAT, bill.Pct,
			bill.Commentary, bill.FileURL, bill.FileName, bill.Status, bill.CreatedAt, bill.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	bill, err := scanBill(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// List returns the bills of email, or every bill when email is empty,
// latest expense date first.
func (r *BillRepository) List(ctx context.Context, email string, limit, offset int) ([]*models.Bill, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if email != "" {
		query = query.Where(squirrel.Eq{"email": email})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}

	return bills, rows.Err()
}

func scanBill(row pgx.Row) (*models.Bill, error) {
	var bill models.Bill
	err := row.Scan(
		&bill.ID, &bill.Email, &bill.Type, &bill.Name, &bill.Amount, &bill.Date, &bill.VAT, &bill.Pct,
		&bill.Commentary, &bill.FileURL, &bill.FileName, &bill.Status, &bill.CreatedAt, &bill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}
