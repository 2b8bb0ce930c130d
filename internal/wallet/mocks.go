package wallet

import (
	"github.com/stretchr/testify/mock"
	"github.com/upayanmazumder/TheArenaX/internal/user"
)

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetTransactions(userID uint) ([]Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Transaction), args.Error(1)
}

func (m *MockWalletRepository) AddCredits(userID uint, amount int) (int, error) {
	args := m.Called(userID, amount)
	return args.Int(0), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(userID uint) (*user.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *MockSessionStore) Put(userID uint, profile *user.Profile) error {
	args := m.Called(userID, profile)
	return args.Error(0)
}

func (m *MockSessionStore) Invalidate(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionStore) UpdateWalletBalance(userID uint, newBalance int) error {
	args := m.Called(userID, newBalance)
	return args.Error(0)
}
