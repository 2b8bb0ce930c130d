package tournament

import (
	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/internal/session"
)

// Broadcaster pushes tournament changes to connected live-feed clients.
type Broadcaster interface {
	BroadcastTournamentUpdate(t *Tournament)
}

type TournamentService struct {
	repo     TournamentRepository
	sessions session.Store
	feed     Broadcaster
}

func NewTournamentService(repo TournamentRepository, sessions session.Store, feed Broadcaster) *TournamentService {
	return &TournamentService{repo: repo, sessions: sessions, feed: feed}
}

func (s *TournamentService) GetTournaments(filters Filters) ([]Tournament, error) {
	tournaments, err := s.repo.GetTournaments()
	if err != nil {
		return nil, err
	}

	return FilterTournaments(tournaments, filters), nil
}

func (s *TournamentService) GetTournament(id uint) (*Tournament, error) {
	return s.repo.GetTournament(id)
}

// JoinTournament checks every precondition against the cached profile before
// touching the database, then hands the mutation to the repository as a
// single transaction. The cache is updated only from the balance that
// transaction returns.
func (s *TournamentService) JoinTournament(tournamentID, userID uint) (*JoinResult, error) {
	profile, err := s.sessions.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewAppError(401, "Please login first", nil)
	}

	t, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return nil, err
	}

	if profile.WalletBalance < t.EntryFee {
		return nil, apperrors.NewAppError(402, "Insufficient credits", nil)
	}

	if t.Status != StatusOpen {
		return nil, apperrors.NewAppError(409, "Tournament is closed", nil)
	}

	joined, err := s.repo.HasParticipant(t.ID, userID)
	if err != nil {
		return nil, err
	}
	if joined {
		return nil, apperrors.NewAppError(409, "You are already registered for this tournament", nil)
	}

	result, err := s.repo.JoinTournament(t, userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateWalletBalance(userID, result.NewBalance); err != nil {
		return nil, err
	}

	s.feed.BroadcastTournamentUpdate(result.Tournament)
	return result, nil
}

func (s *TournamentService) CreateTournament(t *Tournament) (*Tournament, error) {
	if err := validateTournament(t); err != nil {
		return nil, err
	}
	if t.Status == "" {
		t.Status = StatusOpen
	}

	if err := s.repo.CreateTournament(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *TournamentService) UpdateTournament(t *Tournament) (*Tournament, error) {
	if err := validateTournament(t); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTournament(t); err != nil {
		return nil, err
	}

	return s.repo.GetTournament(t.ID)
}

func (s *TournamentService) DeleteTournament(id uint) error {
	return s.repo.DeleteTournament(id)
}

func validateTournament(t *Tournament) error {
	if t.Title == "" || t.Game == "" {
		return apperrors.NewAppError(400, "title and game are required", nil)
	}
	if t.EntryFee < 0 {
		return apperrors.NewAppError(400, "entry_fee must be a non-negative integer", nil)
	}
	if t.PrizePool < 0 {
		return apperrors.NewAppError(400, "prize_pool must be a non-negative integer", nil)
	}
	if t.MaxParticipants < 1 {
		return apperrors.NewAppError(400, "max_participants must be at least 1", nil)
	}
	if t.Status != "" && t.Status != StatusOpen && t.Status != StatusFull && t.Status != StatusCompleted {
		return apperrors.NewAppError(400, "status must be open, full or completed", nil)
	}
	return nil
}
