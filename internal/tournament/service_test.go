package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/upayanmazumder/TheArenaX/internal/user"
)

func newTestTournamentService() (*TournamentService, *MockTournamentRepository, *MockSessionStore, *MockBroadcaster) {
	mockRepo := &MockTournamentRepository{}
	mockSessions := &MockSessionStore{}
	mockFeed := &MockBroadcaster{}
	ts := NewTournamentService(mockRepo, mockSessions, mockFeed)
	return ts, mockRepo, mockSessions, mockFeed
}

func TestTournamentService_JoinTournament_Success(t *testing.T) {
	ts, mockRepo, mockSessions, mockFeed := newTestTournamentService()

	profile := &user.Profile{ID: 7, Username: "alice", WalletBalance: 100}
	open := &Tournament{ID: 1, Title: "Valorant Champions Cup", EntryFee: 100, Status: StatusOpen, MaxParticipants: 64, CurrentParticipants: 10}
	joined := &Tournament{ID: 1, Title: "Valorant Champions Cup", EntryFee: 100, Status: StatusOpen, MaxParticipants: 64, CurrentParticipants: 11}

	mockSessions.On("Get", uint(7)).Return(profile, nil)
	mockRepo.On("GetTournament", uint(1)).Return(open, nil)
	mockRepo.On("HasParticipant", uint(1), uint(7)).Return(false, nil)
	mockRepo.On("JoinTournament", open, uint(7)).Return(&JoinResult{Tournament: joined, NewBalance: 0}, nil)
	mockSessions.On("UpdateWalletBalance", uint(7), 0).Return(nil)
	mockFeed.On("BroadcastTournamentUpdate", joined).Return()

	result, err := ts.JoinTournament(1, 7)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.NewBalance)
	assert.Equal(t, 11, result.Tournament.CurrentParticipants)
	mockRepo.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
	mockFeed.AssertExpectations(t)
}

func TestTournamentService_JoinTournament_NotAuthenticated(t *testing.T) {
	ts, mockRepo, mockSessions, _ := newTestTournamentService()

	mockSessions.On("Get", uint(7)).Return(nil, nil)

	result, err := ts.JoinTournament(1, 7)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Please login first")
	mockRepo.AssertNotCalled(t, "GetTournament")
	mockRepo.AssertNotCalled(t, "JoinTournament")
}

func TestTournamentService_JoinTournament_InsufficientCredits(t *testing.T) {
	ts, mockRepo, mockSessions, _ := newTestTournamentService()

	profile := &user.Profile{ID: 7, WalletBalance: 50}
	open := &Tournament{ID: 1, Title: "CS:GO Major Tournament", EntryFee: 75, Status: StatusOpen, MaxParticipants: 32}

	mockSessions.On("Get", uint(7)).Return(profile, nil)
	mockRepo.On("GetTournament", uint(1)).Return(open, nil)

	result, err := ts.JoinTournament(1, 7)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient credits")
	assert.Equal(t, 50, profile.WalletBalance)
	mockRepo.AssertNotCalled(t, "JoinTournament")
	mockSessions.AssertNotCalled(t, "UpdateWalletBalance")
}

func TestTournamentService_JoinTournament_InsufficientCreditsBeforeStatus(t *testing.T) {
	ts, mockRepo, mockSessions, _ := newTestTournamentService()

	// A broke wallet wins over a closed tournament, whatever the status.
	profile := &user.Profile{ID: 7, WalletBalance: 10}
	completed := &Tournament{ID: 1, EntryFee: 75, Status: StatusCompleted, MaxParticipants: 32}

	mockSessions.On("Get", uint(7)).Return(profile, nil)
	mockRepo.On("GetTournament", uint(1)).Return(completed, nil)

	_, err := ts.JoinTournament(1, 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient credits")
}

func TestTournamentService_JoinTournament_TournamentClosed(t *testing.T) {
	ts, mockRepo, mockSessions, _ := newTestTournamentService()

	profile := &user.Profile{ID: 7, WalletBalance: 1000}
	completed := &Tournament{ID: 1, EntryFee: 75, Status: StatusCompleted, MaxParticipants: 32}

	mockSessions.On("Get", uint(7)).Return(profile, nil)
	mockRepo.On("GetTournament", uint(1)).Return(completed, nil)

	result, err := ts.JoinTournament(1, 7)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Tournament is closed")
	mockRepo.AssertNotCalled(t, "JoinTournament")
}

func TestTournamentService_JoinTournament_AlreadyJoined(t *testing.T) {
	ts, mockRepo, mockSessions, _ := newTestTournamentService()

	profile := &user.Profile{ID: 7, WalletBalance: 1000}
	open := &Tournament{ID: 1, EntryFee: 75, Status: StatusOpen, MaxParticipants: 32}

	mockSessions.On("Get", uint(7)).Return(profile, nil)
	mockRepo.On("GetTournament", uint(1)).Return(open, nil)
	mockRepo.On("HasParticipant", uint(1), uint(7)).Return(true, nil)

	result, err := ts.JoinTournament(1, 7)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertNotCalled(t, "JoinTournament")
	mockSessions.AssertNotCalled(t, "UpdateWalletBalance")
}

func TestTournamentService_GetTournaments_AppliesFilters(t *testing.T) {
	ts, mockRepo, _, _ := newTestTournamentService()

	list := []Tournament{
		{ID: 1, Title: "Valorant Champions Cup", Game: "Valorant", EntryFee: 50},
		{ID: 2, Title: "CS:GO Major Tournament", Game: "CS:GO", EntryFee: 75},
	}
	mockRepo.On("GetTournaments").Return(list, nil)

	result, err := ts.GetTournaments(Filters{SearchTerm: "valorant", Game: "all", FeeBracket: "all"})
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Valorant", result[0].Game)
	mockRepo.AssertExpectations(t)
}

func TestTournamentService_CreateTournament_Defaults(t *testing.T) {
	ts, mockRepo, _, _ := newTestTournamentService()

	in := &Tournament{Title: "Apex Arena", Game: "Apex Legends", EntryFee: 25, MaxParticipants: 16}
	mockRepo.On("CreateTournament", in).Return(nil)

	created, err := ts.CreateTournament(in)
	assert.NoError(t, err)
	assert.Equal(t, StatusOpen, created.Status)
	mockRepo.AssertExpectations(t)
}

func TestTournamentService_CreateTournament_Invalid(t *testing.T) {
	ts, mockRepo, _, _ := newTestTournamentService()

	cases := []*Tournament{
		{Game: "Valorant", MaxParticipants: 16},
		{Title: "No game", MaxParticipants: 16},
		{Title: "Negative fee", Game: "Valorant", EntryFee: -5, MaxParticipants: 16},
		{Title: "No seats", Game: "Valorant", MaxParticipants: 0},
		{Title: "Bad status", Game: "Valorant", MaxParticipants: 16, Status: "paused"},
	}

	for _, in := range cases {
		_, err := ts.CreateTournament(in)
		assert.Error(t, err)
	}
	mockRepo.AssertNotCalled(t, "CreateTournament")
}
