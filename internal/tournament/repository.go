package tournament

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/internal/user"
	"github.com/upayanmazumder/TheArenaX/internal/wallet"
	"github.com/upayanmazumder/TheArenaX/pkg/db"
	"gorm.io/gorm"
)

type TournamentRepository interface {
	GetTournaments() ([]Tournament, error)
	GetTournament(id uint) (*Tournament, error)
	HasParticipant(tournamentID, userID uint) (bool, error)
	JoinTournament(t *Tournament, userID uint) (*JoinResult, error)
	CreateTournament(t *Tournament) error
	UpdateTournament(t *Tournament) error
	DeleteTournament(id uint) error
}

type GormTournamentRepository struct{}

func NewGormTournamentRepository() *GormTournamentRepository {
	return &GormTournamentRepository{}
}

func (r *GormTournamentRepository) GetTournaments() ([]Tournament, error) {
	var tournaments []Tournament
	result := db.DB.Order("start_time asc").Find(&tournaments)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching tournaments", result.Error)
	}

	return tournaments, nil
}

func (r *GormTournamentRepository) GetTournament(id uint) (*Tournament, error) {
	var t Tournament
	result := db.DB.Where("id = ?", id).First(&t)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "Tournament not found", result.Error)
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching tournament", result.Error)
	}

	return &t, nil
}

func (r *GormTournamentRepository) HasParticipant(tournamentID, userID uint) (bool, error) {
	var count int64
	result := db.DB.Model(&Participant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count)
	if result.Error != nil {
		return false, apperrors.NewAppError(500, "Error checking participation", result.Error)
	}

	return count > 0, nil
}

// JoinTournament commits the participant row, the debit, the ledger entry and
// the seat claim as one transaction. The debit and seat claim are conditional
// updates, so a stale balance or participant snapshot rolls the whole join
// back instead of overdrawing a wallet or overfilling a tournament.
func (r *GormTournamentRepository) JoinTournament(t *Tournament, userID uint) (*JoinResult, error) {
	var joined Tournament
	var newBalance int

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		participant := Participant{
			TournamentID: t.ID,
			UserID:       userID,
			JoinedAt:     time.Now(),
		}
		if err := tx.Create(&participant).Error; err != nil {
			return apperrors.NewAppError(409, "You are already registered for this tournament", err)
		}

		debit := tx.Model(&user.Profile{}).
			Where("id = ? AND wallet_balance >= ?", userID, t.EntryFee).
			Update("wallet_balance", gorm.Expr("wallet_balance - ?", t.EntryFee))
		if debit.Error != nil {
			return apperrors.NewAppError(500, "Error debiting wallet", debit.Error)
		}
		if debit.RowsAffected == 0 {
			return apperrors.NewAppError(402, "Insufficient credits", nil)
		}

		entry := wallet.Transaction{
			UserID:          userID,
			Amount:          -t.EntryFee,
			TransactionType: wallet.TypeDebit,
			Description:     "Joined " + t.Title,
			Reference:       uuid.New().String()[:8],
		}
		if err := tx.Create(&entry).Error; err != nil {
			return apperrors.NewAppError(500, "Error recording wallet transaction", err)
		}

		seat := tx.Model(&Tournament{}).
			Where("id = ? AND status = ? AND current_participants < max_participants", t.ID, StatusOpen).
			Update("current_participants", gorm.Expr("current_participants + 1"))
		if seat.Error != nil {
			return apperrors.NewAppError(500, "Error updating tournament", seat.Error)
		}
		if seat.RowsAffected == 0 {
			return apperrors.NewAppError(409, "Tournament is closed", nil)
		}

		full := tx.Model(&Tournament{}).
			Where("id = ? AND current_participants >= max_participants AND status = ?", t.ID, StatusOpen).
			Update("status", StatusFull)
		if full.Error != nil {
			return apperrors.NewAppError(500, "Error updating tournament status", full.Error)
		}

		if err := tx.Where("id = ?", t.ID).First(&joined).Error; err != nil {
			return apperrors.NewAppError(500, "Error fetching tournament", err)
		}

		var profile user.Profile
		if err := tx.Where("id = ?", userID).First(&profile).Error; err != nil {
			return apperrors.NewAppError(500, "Error fetching profile", err)
		}
		newBalance = profile.WalletBalance

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &JoinResult{Tournament: &joined, NewBalance: newBalance}, nil
}

func (r *GormTournamentRepository) CreateTournament(t *Tournament) error {
	if err := db.DB.Create(t).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating tournament", err)
	}

	return nil
}

func (r *GormTournamentRepository) UpdateTournament(t *Tournament) error {
	result := db.DB.Model(&Tournament{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"title":            t.Title,
		"game":             t.Game,
		"description":      t.Description,
		"entry_fee":        t.EntryFee,
		"prize_pool":       t.PrizePool,
		"start_time":       t.StartTime,
		"max_participants": t.MaxParticipants,
		"status":           t.Status,
	})
	if result.Error != nil {
		return apperrors.NewAppError(500, "Error updating tournament", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "Tournament not found", nil)
	}

	return nil
}

func (r *GormTournamentRepository) DeleteTournament(id uint) error {
	result := db.DB.Delete(&Tournament{}, id)
	if result.Error != nil {
		return apperrors.NewAppError(500, "Error deleting tournament", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "Tournament not found", nil)
	}

	return nil
}
