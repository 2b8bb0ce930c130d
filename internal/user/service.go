package user

import (
	"errors"
	"log"
	"os"

	"github.com/upayanmazumder/TheArenaX/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(req SignupRequest) (string, *Profile, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", nil, apperrors.NewAppError(400, "username, email and password are required", nil)
	}

	userRetrieved, err := u.repo.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		return "", nil, err
	}

	token, errJWT := GenerateJWT(userRetrieved.ID, "")
	if errJWT != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}

	profile := &Profile{
		ID:            userRetrieved.ID,
		Username:      userRetrieved.Username,
		Email:         userRetrieved.Email,
		WalletBalance: 0,
	}
	return token, profile, nil
}

// Login validates credentials and returns a token. The profile fetch is best
// effort: a failure leaves the session authenticated with no cached profile,
// and no retry is attempted.
func (u *UserService) Login(req LoginRequest) (string, *Profile, error) {
	userRetrieved, err := u.repo.ValidateUser(req.Email, req.Password)
	if err != nil {
		return "", nil, apperrors.NewAppError(401, "invalid credentials", errors.New("invalid credentials"))
	}
	token, errJWT := GenerateJWT(userRetrieved.ID, "")
	if errJWT != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}

	profile, errProfile := u.repo.GetProfile(userRetrieved.ID)
	if errProfile != nil {
		log.Println("Error fetching profile after login:", errProfile)
		return token, nil, nil
	}
	return token, profile, nil
}

func (u *UserService) GetProfile(id uint) (*Profile, error) {
	return u.repo.GetProfile(id)
}

// AdminLogin checks the credentials server-side against the environment. The
// defaults mirror the development login shipped with the original frontend.
func (u *UserService) AdminLogin(req AdminLoginRequest) (string, error) {
	adminUser := getEnv("ADMIN_USERNAME", "admin")
	adminPass := getEnv("ADMIN_PASSWORD", "arena123")

	if req.Username != adminUser || req.Password != adminPass {
		return "", apperrors.NewAppError(401, "Invalid admin credentials", nil)
	}

	token, err := GenerateJWT(0, RoleAdmin)
	if err != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", err)
	}
	return token, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
