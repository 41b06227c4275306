package newbill

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"billed/internal/routes"

	"go.uber.org/zap"
)

// UploadState tracks the receipt upload sub-flow.
type UploadState int

const (
	StateNoFile UploadState = iota
	StateErrorShown
	StateUploading
	StateUploaded
	StateUploadFailed
)

func (s UploadState) String() string {
	switch s {
	case StateErrorShown:
		return "error_shown"
	case StateUploading:
		return "uploading"
	case StateUploaded:
		return "uploaded"
	case StateUploadFailed:
		return "upload_failed"
	default:
		return "no_file"
	}
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Session   SessionProvider
	Store     Store
	Navigator Navigator
	Form      FormSnapshot
	FileError ErrorIndicator
	FileInput FileInput
	Logger    *zap.Logger
}

type Option func(*Controller)

// WithRejectionHandler registers fn to receive store failures that the
// controller does not recover from.
func WithRejectionHandler(fn func(error)) Option {
	return func(c *Controller) {
		c.onRejection = fn
	}
}

// Controller drives the NewBill form.
type Controller struct {
	session   Session
	store     Store
	navigator Navigator
	form      FormSnapshot
	fileError ErrorIndicator
	fileInput FileInput
	logger    *zap.Logger

	onRejection func(error)

	mu        sync.Mutex
	pending   *PendingFile
	receipt   *UploadedReceipt
	state     UploadState
	uploading int

	inflight sync.WaitGroup
}

// NewController snapshots the current session and binds the collaborators.
// A missing session yields an empty email and type.
func NewController(deps Deps, opts ...Option) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		store:     deps.Store,
		navigator: deps.Navigator,
		form:      deps.Form,
		fileError: deps.FileError,
		fileInput: deps.FileInput,
		logger:    logger,
	}
	if deps.Session != nil {
		if user, ok := deps.Session.User(); ok && user != nil {
			c.session = *user
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ FileHandler   = (*Controller)(nil)
	_ SubmitHandler = (*Controller)(nil)
)

// OnFileSelected validates the selected file and, when accepted, uploads it
// in the background. A rejected file never reaches the store.
func (c *Controller) OnFileSelected(ctx context.Context, file SelectedFile) {
	if Classify(file.Name) == Rejected {
		c.logger.Info("Receipt rejected",
			zap.String("file_name", file.Name),
			zap.String("mime_type", file.MIMEType),
		)
		if c.fileError != nil {
			c.fileError.Show()
		}
		if c.fileInput != nil {
			c.fileInput.Clear()
		}
		c.mu.Lock()
		c.pending = nil
		c.state = StateErrorShown
		c.mu.Unlock()
		return
	}

	if c.fileError != nil {
		c.fileError.Hide()
	}

	c.mu.Lock()
	c.pending = &PendingFile{
		Name:         file.Name,
		Content:      file.Content,
		DeclaredPath: file.Path,
	}
	c.state = StateUploading
	c.uploading++
	c.mu.Unlock()

	upload := ReceiptUpload{
		FileName: file.Name,
		Content:  file.Content,
		Email:    c.session.Email,
	}

	c.inflight.Add(1)
	go c.upload(context.WithoutCancel(ctx), upload)
}

func (c *Controller) upload(ctx context.Context, upload ReceiptUpload) {
	defer c.inflight.Done()

	receipt, err := c.store.Bills().UploadReceipt(ctx, upload)

	c.mu.Lock()
	c.uploading--
	if err == nil && receipt != nil {
		// Last resolution wins.
		r := *receipt
		if r.FileName == "" {
			r.FileName = upload.FileName
		}
		c.receipt = &r
	}
	if c.uploading == 0 && c.state == StateUploading {
		if c.receipt != nil {
			c.state = StateUploaded
		} else {
			c.state = StateUploadFailed
		}
	}
	c.mu.Unlock()

	if err != nil {
		c.reject("receipt upload", err)
		return
	}
	c.logger.Info("Receipt uploaded",
		zap.String("file_name", upload.FileName),
		zap.String("key", receipt.Key),
	)
}

// OnSubmit builds the bill from the live form values and the latest
// receipt, sends it, and navigates to the bills list without waiting for
// the store.
func (c *Controller) OnSubmit(ctx context.Context) {
	payload := c.buildPayload()

	c.inflight.Add(1)
	go c.create(context.WithoutCancel(ctx), payload)

	c.navigator.Navigate(routes.Bills)
}

func (c *Controller) create(ctx context.Context, payload *BillPayload) {
	defer c.inflight.Done()

	bill, err := c.store.Bills().Create(ctx, payload)
	if err != nil {
		c.reject("bill creation", err)
		return
	}
	id := ""
	if bill != nil {
		id = bill.ID
	}
	c.logger.Info("Bill created", zap.String("bill_id", id), zap.String("email", payload.Email))
}

func (c *Controller) buildPayload() *BillPayload {
	var fields BillFields
	if c.form != nil {
		fields = c.form.FieldValues()
	}

	c.mu.Lock()
	var fileURL, fileName string
	if c.receipt != nil {
		fileURL = c.receipt.URL
		fileName = c.receipt.FileName
	}
	c.mu.Unlock()

	return &BillPayload{
		Email:      c.session.Email,
		Type:       fields.ExpenseType,
		Name:       fields.Name,
		Amount:     parseInt(fields.Amount, 0),
		Date:       fields.Date,
		VAT:        fields.VAT,
		Pct:        parseInt(fields.Pct, DefaultPct),
		Commentary: fields.Commentary,
		FileURL:    fileURL,
		FileName:   fileName,
		Status:     StatusPending,
	}
}

// parseInt reads the leading integer of s, returning def when there is none.
func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}

func (c *Controller) reject(op string, err error) {
	c.logger.Error("Unhandled store rejection", zap.String("operation", op), zap.Error(err))
	if c.onRejection != nil {
		c.onRejection(err)
	}
}

// Wait blocks until every upload and creation started so far has settled.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Receipt returns a copy of the current uploaded receipt, if any.
func (c *Controller) Receipt() (UploadedReceipt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.receipt == nil {
		return UploadedReceipt{}, false
	}
	return *c.receipt, true
}

// Pending returns the file currently selected, if any.
func (c *Controller) Pending() (PendingFile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return PendingFile{}, false
	}
	return *c.pending, true
}

func (c *Controller) State() UploadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the session snapshot taken at construction.
func (c *Controller) Session() Session {
	return c.session
}
