package casino

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

// GetAccount implements [repository.Casino].
func (m *MockRepository) GetAccount(ctx context.Context, userID string) (*domain.WagerAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WagerAccount), args.Error(1)
}

func (m *MockRepository) CreateAccount(ctx context.Context, account *domain.WagerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockRepository) TopAccounts(ctx context.Context, limit int) ([]domain.WagerAccount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WagerAccount), args.Error(1)
}

func (m *MockRepository) ListSettlements(ctx context.Context, userID string, limit int) ([]domain.SettlementRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementRecord), args.Error(1)
}

func (m *MockRepository) SetZodiacSign(ctx context.Context, userID, sign string) error {
	args := m.Called(ctx, userID, sign)
	return args.Error(0)
}

func (m *MockRepository) BeginSettle(ctx context.Context) (repository.SettleTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SettleTx), args.Error(1)
}

// MockSettleTx
type MockSettleTx struct {
	mock.Mock
}

func (m *MockSettleTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.WagerAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WagerAccount), args.Error(1)
}

func (m *MockSettleTx) UpdateAccount(ctx context.Context, account *domain.WagerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockSettleTx) InsertSettlement(ctx context.Context, record *domain.SettlementRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSettleTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettleTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPool
type MockPool struct {
	mock.Mock
}

// GetByID implements [repository.ChallengePool].
func (m *MockPool) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockPool) GetRandom(ctx context.Context) (*domain.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

// MockGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, techStack, difficulty string) (*domain.Challenge, error) {
	args := m.Called(ctx, techStack, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockGenerator) GenerateDaily(ctx context.Context) (*domain.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}
