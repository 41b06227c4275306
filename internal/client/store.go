// Package client talks to the bill store server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"billed/internal/newbill"

	"go.uber.org/zap"
)

// StoreError is returned for non-2xx answers of the server.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Erreur %d", e.StatusCode)
	}
	return fmt.Sprintf("Erreur %d: %s", e.StatusCode, e.Message)
}

// RemoteStore implements newbill.Store against the /api/v1/bills endpoints.
type RemoteStore struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ newbill.Store = (*RemoteStore)(nil)

func NewRemoteStore(baseURL string, httpClient *http.Client, logger *zap.Logger) *RemoteStore {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RemoteStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (s *RemoteStore) Bills() newbill.Bills {
	return &remoteBills{store: s}
}

// BillsFor scopes List to the bills of email.
func (s *RemoteStore) BillsFor(email string) newbill.Bills {
	return &remoteBills{store: s, email: email}
}

// ForUser returns a Store whose listings are limited to the bills of email.
func (s *RemoteStore) ForUser(email string) newbill.Store {
	return userStore{store: s, email: email}
}

type userStore struct {
	store *RemoteStore
	email string
}

func (u userStore) Bills() newbill.Bills {
	return u.store.BillsFor(u.email)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type remoteBills struct {
	store *RemoteStore
	email string
}

func (b *remoteBills) UploadReceipt(ctx context.Context, upload newbill.ReceiptUpload) (*newbill.UploadedReceipt, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("email", upload.Email); err != nil {
		return nil, fmt.Errorf("failed to write email field: %w", err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(upload.FileName)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	part, err := writer.CreatePart(map[string][]string{
		"Content-Type":        {mimeType},
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(upload.FileName))},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	var receipt newbill.UploadedReceipt
	if err := b.store.do(ctx, http.MethodPost, "/api/v1/bills/receipts", writer.FormDataContentType(), &body, &receipt); err != nil {
		return nil, err
	}

	b.store.logger.Debug("Receipt uploaded", zap.String("key", receipt.Key), zap.String("file_url", receipt.URL))
	return &receipt, nil
}

func (b *remoteBills) Create(ctx context.Context, payload *newbill.BillPayload) (*newbill.Bill, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bill: %w", err)
	}

	var bill newbill.Bill
	if err := b.store.do(ctx, http.MethodPost, "/api/v1/bills", "application/json", bytes.NewReader(data), &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (b *remoteBills) List(ctx context.Context) ([]*newbill.Bill, error) {
	path := "/api/v1/bills"
	if b.email != "" {
		path += "?email=" + url.QueryEscape(b.email)
	}

	var bills []*newbill.Bill
	if err := b.store.do(ctx, http.MethodGet, path, "", nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (s *RemoteStore) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		bodyBytes, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(bodyBytes, &errResp)
		s.logger.Warn("Bill store answered with error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", errResp.Error),
		)
		return &StoreError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
