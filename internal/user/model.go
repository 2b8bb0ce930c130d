package user

// User holds the account credentials. The public-facing fields live on
// Profile, which shares the user's primary key.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"password,omitempty"`
}

type Profile struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Username      string `gorm:"not null" json:"username"`
	Email         string `gorm:"not null" json:"email"`
	WalletBalance int    `gorm:"not null;default:0" json:"wallet_balance"`
}

func (Profile) TableName() string {
	return "profiles"
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
