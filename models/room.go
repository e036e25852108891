package models

// Room is the active binding between a user, their codename and the
// moderator-facing thread. A room exists only while the conversation is
// open; closing or blocking a conversation deletes the row outright, so a
// user who writes again later gets a brand-new room.
type Room struct {
	RoomID   int64
	Codename string
	ThreadID string
	UserID   string
}
