// Package mockstore is an in-memory bills store seeded with fixture data.
// Tests use it to count calls, inject failures and hold calls open.
package mockstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"billed/internal/newbill"

	"github.com/google/uuid"
)

type Store struct {
	mu      sync.Mutex
	bills   []*newbill.Bill
	uploads []newbill.ReceiptUpload
	creates []newbill.BillPayload
	lists   int

	uploadErr error
	createErr error
	listErr   error

	uploadGate  chan struct{}
	uploadGates map[string]chan struct{}
	createGate  chan struct{}
}

var _ newbill.Store = (*Store)(nil)

// New returns a store holding the fixture bills.
func New() *Store {
	return &Store{bills: Fixtures()}
}

// NewEmpty returns a store without any bill.
func NewEmpty() *Store {
	return &Store{}
}

func (s *Store) Bills() newbill.Bills {
	return (*bills)(s)
}

// FailUploads makes every following UploadReceipt return err. Pass nil to reset.
func (s *Store) FailUploads(err error) {
	s.mu.Lock()
	s.uploadErr = err
	s.mu.Unlock()
}

func (s *Store) FailCreates(err error) {
	s.mu.Lock()
	s.createErr = err
	s.mu.Unlock()
}

func (s *Store) FailLists(err error) {
	s.mu.Lock()
	s.listErr = err
	s.mu.Unlock()
}

// HoldUploads blocks UploadReceipt calls until the returned func is called.
func (s *Store) HoldUploads() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.uploadGate = gate
	s.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// HoldUpload blocks UploadReceipt calls for fileName only, so that uploads
// can be released in any order.
func (s *Store) HoldUpload(fileName string) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	if s.uploadGates == nil {
		s.uploadGates = make(map[string]chan struct{})
	}
	s.uploadGates[fileName] = gate
	s.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// HoldCreates blocks Create calls until the returned func is called.
func (s *Store) HoldCreates() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.createGate = gate
	s.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (s *Store) Uploads() []newbill.ReceiptUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]newbill.ReceiptUpload(nil), s.uploads...)
}

func (s *Store) Creates() []newbill.BillPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]newbill.BillPayload(nil), s.creates...)
}

func (s *Store) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists
}

type bills Store

func (b *bills) UploadReceipt(ctx context.Context, upload newbill.ReceiptUpload) (*newbill.UploadedReceipt, error) {
	s := (*Store)(b)

	s.mu.Lock()
	s.uploads = append(s.uploads, upload)
	gate, err := s.uploadGate, s.uploadErr
	if g, ok := s.uploadGates[upload.FileName]; ok {
		gate = g
	}
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	key := uuid.NewString()
	return &newbill.UploadedReceipt{
		URL:      fmt.Sprintf("https://localhost:3456/images/%s/%s", key, upload.FileName),
		FileName: upload.FileName,
		Key:      key,
	}, nil
}

func (b *bills) Create(ctx context.Context, payload *newbill.BillPayload) (*newbill.Bill, error) {
	s := (*Store)(b)

	s.mu.Lock()
	s.creates = append(s.creates, *payload)
	gate, err := s.createGate, s.createErr
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	bill := &newbill.Bill{
		ID:         uuid.NewString(),
		Email:      payload.Email,
		Type:       payload.Type,
		Name:       payload.Name,
		Amount:     payload.Amount,
		Date:       payload.Date,
		VAT:        payload.VAT,
		Pct:        payload.Pct,
		Commentary: payload.Commentary,
		FileURL:    payload.FileURL,
		FileName:   payload.FileName,
		Status:     payload.Status,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.bills = append(s.bills, bill)
	s.mu.Unlock()

	return bill, nil
}

func (b *bills) List(ctx context.Context) ([]*newbill.Bill, error) {
	s := (*Store)(b)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*newbill.Bill, len(s.bills))
	for i, bill := range s.bills {
		cp := *bill
		out[i] = &cp
	}
	return out, nil
}
