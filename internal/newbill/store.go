package newbill

import "context"

// Store is the remote persistence capability for bills.
type Store interface {
	Bills() Bills
}

// Bills is the bills resource collection of a Store.
type Bills interface {
	UploadReceipt(ctx context.Context, upload ReceiptUpload) (*UploadedReceipt, error)
	Create(ctx context.Context, payload *BillPayload) (*Bill, error)
	List(ctx context.Context) ([]*Bill, error)
}

// SessionProvider gives read access to the persisted session.
type SessionProvider interface {
	User() (*Session, bool)
}

// Navigator replaces the active view with the one mapped to route.
type Navigator interface {
	Navigate(route string)
}

// FormSnapshot exposes the current values of the NewBill form fields.
type FormSnapshot interface {
	FieldValues() BillFields
}

// ErrorIndicator is the inline "wrong file type" message of the form.
type ErrorIndicator interface {
	Show()
	Hide()
}

// FileInput is the form's file picker.
type FileInput interface {
	Clear()
}

// FileHandler and SubmitHandler are the bindings a hosting UI calls into.
type FileHandler interface {
	OnFileSelected(ctx context.Context, file SelectedFile)
}

type SubmitHandler interface {
	OnSubmit(ctx context.Context)
}
