package user

import (
	"errors"

	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
	"github.com/upayanmazumder/TheArenaX/pkg/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(username, email, password string) (*User, error)
	ValidateUser(email, password string) (*User, error)
	GetProfile(id uint) (*Profile, error)
}

type GormUserRepository struct{}

func NewGormUserRepository() *GormUserRepository {
	return &GormUserRepository{}
}

func (r *GormUserRepository) CreateUser(username, email, password string) (*User, error) {
	var exists User
	result := db.DB.Where("username = ? OR email = ?", username, email).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewAppError(409, "user already exists", nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	// The account row and its profile are created together so a signup can
	// never leave a user without a wallet.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		profile := Profile{
			ID:            newUser.ID,
			Username:      newUser.Username,
			Email:         newUser.Email,
			WalletBalance: 0,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormUserRepository) ValidateUser(email, password string) (*User, error) {
	var u User
	result := db.DB.Where("email = ?", email).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *GormUserRepository) GetProfile(id uint) (*Profile, error) {
	var p Profile
	result := db.DB.Where("id = ?", id).First(&p)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "profile not found", result.Error)
	} else if result.Error != nil {
		return nil, result.Error
	}

	return &p, nil
}
