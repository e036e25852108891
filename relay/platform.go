package relay

// Platform is the slice of the chat platform the router needs. The discord
// package provides the real implementation; tests substitute a fake.
type Platform interface {
	// SendDirectMessage delivers content to a user's DM channel.
	SendDirectMessage(userID, content string) error
	// CreateThread opens a new thread under the parent channel and returns
	// its ID. The title is the conversation's codename, verbatim.
	CreateThread(parentChannelID, title string) (string, error)
	// SendThreadMessage posts content into an existing thread.
	SendThreadMessage(threadID, content string) error
	// ArchiveThread archives and locks a thread.
	ArchiveThread(threadID string) error
	// AssignRole gives a user a guild role.
	AssignRole(userID, roleID string) error
	// HasRole reports whether a user currently holds a guild role. Users no
	// longer in the guild count as not holding it.
	HasRole(userID, roleID string) (bool, error)
	// ThreadExists reports whether a thread still exists on the platform.
	ThreadExists(threadID string) (bool, error)
}
