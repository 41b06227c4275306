package session

import (
	"encoding/json"

	"billed/internal/newbill"

	"go.uber.org/zap"
)

// Provider reads the connected user out of a FileStore.
type Provider struct {
	store  *FileStore
	logger *zap.Logger
}

var _ newbill.SessionProvider = (*Provider)(nil)

func NewProvider(store *FileStore, logger *zap.Logger) *Provider {
	return &Provider{
		store:  store,
		logger: logger,
	}
}

// User returns false when no user is stored or the stored value is unreadable.
func (p *Provider) User() (*newbill.Session, bool) {
	raw, ok, err := p.store.Get(UserKey)
	if err != nil {
		p.logger.Warn("Failed to read session", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var user newbill.Session
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		p.logger.Warn("Invalid user in session", zap.Error(err))
		return nil, false
	}
	return &user, true
}
