package live

import "github.com/upayanmazumder/TheArenaX/internal/tournament"

type TournamentUpdate struct {
	ID                  uint   `json:"id"`
	CurrentParticipants int    `json:"currentParticipants"`
	Status              string `json:"status"`
}

// Feed implements tournament.Broadcaster over the client registry.
type Feed struct{}

func (Feed) BroadcastTournamentUpdate(t *tournament.Tournament) {
	Broadcast(OutgoingMessage{
		Type: "TOURNAMENT_UPDATE",
		Payload: TournamentUpdate{
			ID:                  t.ID,
			CurrentParticipants: t.CurrentParticipants,
			Status:              t.Status,
		},
	})
}
