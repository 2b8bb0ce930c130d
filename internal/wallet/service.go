package wallet

import (
	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/internal/session"
)

const minPurchase = 10

type WalletService struct {
	repo     WalletRepository
	sessions session.Store
}

func NewWalletService(repo WalletRepository, sessions session.Store) *WalletService {
	return &WalletService{repo: repo, sessions: sessions}
}

func (w *WalletService) GetTransactions(userID uint) ([]Transaction, error) {
	return w.repo.GetTransactions(userID)
}

func (w *WalletService) AddCredits(userID uint, amount int) (int, error) {
	if amount < minPurchase {
		return 0, apperrors.NewAppError(400, "Minimum amount is 10 credits", nil)
	}

	newBalance, err := w.repo.AddCredits(userID, amount)
	if err != nil {
		return 0, err
	}

	if err := w.sessions.UpdateWalletBalance(userID, newBalance); err != nil {
		return 0, err
	}

	return newBalance, nil
}
