package tournament

import (
	"github.com/stretchr/testify/mock"
	"github.com/upayanmazumder/TheArenaX/internal/user"
)

type MockTournamentRepository struct {
	mock.Mock
}

func (m *MockTournamentRepository) GetTournaments() ([]Tournament, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tournament), args.Error(1)
}

func (m *MockTournamentRepository) GetTournament(id uint) (*Tournament, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tournament), args.Error(1)
}

func (m *MockTournamentRepository) HasParticipant(tournamentID, userID uint) (bool, error) {
	args := m.Called(tournamentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTournamentRepository) JoinTournament(t *Tournament, userID uint) (*JoinResult, error) {
	args := m.Called(t, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*JoinResult), args.Error(1)
}

func (m *MockTournamentRepository) CreateTournament(t *Tournament) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTournamentRepository) UpdateTournament(t *Tournament) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTournamentRepository) DeleteTournament(id uint) error {
	args := m.Called(id)
	return args.Error(0)
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

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastTournamentUpdate(t *Tournament) {
	m.Called(t)
}
