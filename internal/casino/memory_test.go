package casino

import (
	"context"
	"errors"
	"sync"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/repository"
)

// memRepo is an in-memory repository.Casino for concurrency tests. Its
// settlement transaction holds the repo mutex from BeginSettle until
// Commit/Rollback, mimicking a row lock.
type memRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.WagerAccount
	records  []domain.SettlementRecord
}

func newMemRepo() *memRepo {
	return &memRepo{accounts: make(map[string]*domain.WagerAccount)}
}

func copyAccount(a *domain.WagerAccount) *domain.WagerAccount {
	cp := *a
	if a.LastDailyPlayedAt != nil {
		t := *a.LastDailyPlayedAt
		cp.LastDailyPlayedAt = &t
	}
	return &cp
}

func (r *memRepo) GetAccount(_ context.Context, userID string) (*domain.WagerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[userID]; ok {
		return copyAccount(a), nil
	}
	return nil, nil
}

func (r *memRepo) CreateAccount(_ context.Context, account *domain.WagerAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.UserID]; !ok {
		r.accounts[account.UserID] = copyAccount(account)
	}
	return nil
}

func (r *memRepo) TopAccounts(_ context.Context, limit int) ([]domain.WagerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts := make([]domain.WagerAccount, 0, len(r.accounts))
	for _, a := range r.accounts {
		accounts = append(accounts, *a)
		if len(accounts) == limit {
			break
		}
	}
	return accounts, nil
}

func (r *memRepo) ListSettlements(_ context.Context, userID string, limit int) ([]domain.SettlementRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var records []domain.SettlementRecord
	for i := len(r.records) - 1; i >= 0 && len(records) < limit; i-- {
		if r.records[i].UserID == userID {
			records = append(records, r.records[i])
		}
	}
	return records, nil
}

func (r *memRepo) SetZodiacSign(_ context.Context, userID, sign string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[userID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.ZodiacSign = sign
	return nil
}

func (r *memRepo) BeginSettle(_ context.Context) (repository.SettleTx, error) {
	r.mu.Lock()
	return &memTx{repo: r}, nil
}

type memTx struct {
	repo   *memRepo
	staged *domain.WagerAccount
	record *domain.SettlementRecord
	closed bool
}

func (t *memTx) GetAccountForUpdate(_ context.Context, userID string) (*domain.WagerAccount, error) {
	if a, ok := t.repo.accounts[userID]; ok {
		return copyAccount(a), nil
	}
	return nil, nil
}

func (t *memTx) UpdateAccount(_ context.Context, account *domain.WagerAccount) error {
	if _, ok := t.repo.accounts[account.UserID]; !ok {
		return domain.ErrAccountNotFound
	}
	t.staged = copyAccount(account)
	return nil
}

func (t *memTx) InsertSettlement(_ context.Context, record *domain.SettlementRecord) error {
	rec := *record
	t.record = &rec
	return nil
}

func (t *memTx) Commit(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if t.staged != nil {
		t.repo.accounts[t.staged.UserID] = t.staged
	}
	if t.record != nil {
		t.repo.records = append(t.repo.records, *t.record)
	}
	t.closed = true
	t.repo.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	t.repo.mu.Unlock()
	return nil
}
