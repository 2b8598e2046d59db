package model

import "time"

// Friendship is one directed edge of the friendship graph: Owner added
// Friend, which says nothing about the reverse direction. Confirmed is
// always written true today; the column is kept for a future pending-request
// flow.
type Friendship struct {
	OwnerID   int64     `db:"user_id" json:"user_id"`
	FriendID  int64     `db:"friend_id" json:"friend_id"`
	Confirmed bool      `db:"confirmed" json:"confirmed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
