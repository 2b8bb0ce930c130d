package tournament

import "time"

const (
	StatusOpen      = "open"
	StatusFull      = "full"
	StatusCompleted = "completed"
)

type Tournament struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Title               string    `gorm:"not null" json:"title"`
	Game                string    `gorm:"not null" json:"game"`
	Description         string    `json:"description"`
	EntryFee            int       `gorm:"not null;default:0" json:"entry_fee"`
	PrizePool           int       `gorm:"not null;default:0" json:"prize_pool"`
	StartTime           time.Time `json:"start_time"`
	MaxParticipants     int       `gorm:"not null" json:"max_participants"`
	CurrentParticipants int       `gorm:"not null;default:0" json:"current_participants"`
	Status              string    `gorm:"not null;default:open" json:"status"`
}

// Participant links a user to a tournament. The composite unique index keeps
// a user from joining the same tournament twice.
type Participant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TournamentID uint      `gorm:"not null;uniqueIndex:idx_tournament_user" json:"tournament_id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_tournament_user" json:"user_id"`
	JoinedAt     time.Time `json:"joined_at"`
}

func (Participant) TableName() string {
	return "tournament_participants"
}

type Filters struct {
	SearchTerm string `json:"searchTerm"`
	Game       string `json:"game"`
	FeeBracket string `json:"feeBracket"`
}

type JoinResult struct {
	Tournament *Tournament `json:"tournament"`
	NewBalance int         `json:"newBalance"`
}
