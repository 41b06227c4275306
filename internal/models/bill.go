package models

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

type Bill struct {
	ID         uuid.UUID  `db:"id"`
	Email      string     `db:"email"`
	Type       string     `db:"type"`
	Name       string     `db:"name"`
	Amount     int        `db:"amount"`
	Date       string     `db:"date"`
	VAT        string     `db:"vat"`
	Pct        int        `db:"pct"`
	Commentary string     `db:"commentary"`
	FileURL    string     `db:"file_url"`
	FileName   string     `db:"file_name"`
	Status     BillStatus `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// Receipt is an uploaded receipt image, not yet attached to a bill.
type Receipt struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FileName  string    `db:"file_name"`
	FileSize  int64     `db:"file_size"`
	FileURL   string    `db:"file_url"`
	MIMEType  string    `db:"mime_type"`
	CreatedAt time.Time `db:"created_at"`
}
