package wallet

import (
	"github.com/google/uuid"
	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/internal/user"
	"github.com/upayanmazumder/TheArenaX/pkg/db"
	"gorm.io/gorm"
)

type WalletRepository interface {
	GetTransactions(userID uint) ([]Transaction, error)
	AddCredits(userID uint, amount int) (int, error)
}

type GormWalletRepository struct{}

func NewGormWalletRepository() *GormWalletRepository {
	return &GormWalletRepository{}
}

func (r *GormWalletRepository) GetTransactions(userID uint) ([]Transaction, error) {
	var transactions []Transaction
	result := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&transactions)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching transactions", result.Error)
	}

	return transactions, nil
}

// AddCredits credits the balance and appends the ledger entry in one
// transaction, returning the committed balance.
func (r *GormWalletRepository) AddCredits(userID uint, amount int) (int, error) {
	var newBalance int

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		credit := tx.Model(&user.Profile{}).
			Where("id = ?", userID).
			Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
		if credit.Error != nil {
			return apperrors.NewAppError(500, "Error updating wallet", credit.Error)
		}
		if credit.RowsAffected == 0 {
			return apperrors.NewAppError(404, "profile not found", nil)
		}

		entry := Transaction{
			UserID:          userID,
			Amount:          amount,
			TransactionType: TypeCredit,
			Description:     "Credits Purchase",
			Reference:       uuid.New().String()[:8],
		}
		if err := tx.Create(&entry).Error; err != nil {
			return apperrors.NewAppError(500, "Error recording wallet transaction", err)
		}

		var profile user.Profile
		if err := tx.Where("id = ?", userID).First(&profile).Error; err != nil {
			return apperrors.NewAppError(500, "Error fetching profile", err)
		}
		newBalance = profile.WalletBalance

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}
