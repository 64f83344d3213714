package models

// Participant is a user bound to one live connection. A connection carries at
// most one Participant, and a Participant belongs to exactly one room from
// join until removal; there is no room transfer.
type Participant struct {
	// ID is the connection identifier, unique per live connection.
	ID string `json:"id"`
	// Username is the display name chosen on join. Not guaranteed unique.
	Username string `json:"username"`
	// Room is the identifier of the room the participant joined.
	Room string `json:"room"`
	// IsOnline is true while the participant is registered; the copy returned
	// by a leave or kick has it set to false.
	IsOnline bool `json:"isOnline"`
}
