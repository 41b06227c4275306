package newbill

import "time"

type UserType string

const (
	UserTypeEmployee UserType = "Employee"
	UserTypeAdmin    UserType = "Admin"
)

type BillStatus string

const (
	StatusPending  BillStatus = "pending"
	StatusAccepted BillStatus = "accepted"
	StatusRefused  BillStatus = "refused"
)

// DefaultPct is the VAT percentage used when the form leaves it blank.
const DefaultPct = 20

// Session is the identity of the connected user.
type Session struct {
	Type  UserType `json:"type"`
	Email string   `json:"email"`
}

// SelectedFile is what the hosting UI hands over on a file input change.
type SelectedFile struct {
	Name     string
	Content  []byte
	MIMEType string
	Path     string
}

// PendingFile is the last accepted selection.
type PendingFile struct {
	Name         string
	Content      []byte
	DeclaredPath string
}

// UploadedReceipt is the store's answer to a successful receipt upload.
type UploadedReceipt struct {
	URL      string `json:"fileUrl"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}

// ReceiptUpload is the multipart-style payload sent for a receipt.
type ReceiptUpload struct {
	FileName string
	Content  []byte
	Email    string
}

// BillFields are the raw form values, read at submit time.
type BillFields struct {
	ExpenseType string
	Name        string
	Date        string
	Amount      string
	VAT         string
	Pct         string
	Commentary  string
}

type BillPayload struct {
	Email      string     `json:"email"`
	Type       string     `json:"type"`
	Name       string     `json:"name"`
	Amount     int        `json:"amount"`
	Date       string     `json:"date"`
	VAT        string     `json:"vat"`
	Pct        int        `json:"pct"`
	Commentary string     `json:"commentary"`
	FileURL    string     `json:"fileUrl"`
	FileName   string     `json:"fileName"`
	Status     BillStatus `json:"status"`
}

// Bill is a persisted expense record as returned by the store.
type Bill struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Type       string     `json:"type"`
	Name       string     `json:"name"`
	Amount     int        `json:"amount"`
	Date       string     `json:"date"`
	VAT        string     `json:"vat"`
	Pct        int        `json:"pct"`
	Commentary string     `json:"commentary"`
	FileURL    string     `json:"fileUrl"`
	FileName   string     `json:"fileName"`
	Status     BillStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}
