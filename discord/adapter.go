// Package discord implements relay.Platform on a discordgo session.
package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Thread auto-archive duration in minutes. Discord caps this at one week;
// the reconciliation sweep handles anything the platform archives for us.
const threadArchiveMinutes = 10080

// Adapter executes platform side effects against a single guild.
type Adapter struct {
	session *discordgo.Session
	guildID string
}

// NewAdapter wraps a session for the configured guild.
func NewAdapter(session *discordgo.Session, guildID string) *Adapter {
	return &Adapter{session: session, guildID: guildID}
}

// SendDirectMessage delivers content to the user's DM channel, creating the
// channel if this is the first message to them.
func (a *Adapter) SendDirectMessage(userID, content string) error {
	channel, err := a.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with user: %w", err)
	}
	if _, err := a.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}

// CreateThread opens a private thread under the inbox channel. The title is
// the codename, which is the only handle moderators get.
func (a *Adapter) CreateThread(parentChannelID, title string) (string, error) {
	thread, err := a.session.ThreadStart(parentChannelID, title, discordgo.ChannelTypeGuildPrivateThread, threadArchiveMinutes)
	if err != nil {
		return "", fmt.Errorf("failed to start thread under channel %s: %w", parentChannelID, err)
	}
	return thread.ID, nil
}

// SendThreadMessage posts content into a thread.
func (a *Adapter) SendThreadMessage(threadID, content string) error {
	if _, err := a.session.ChannelMessageSend(threadID, content); err != nil {
		return fmt.Errorf("failed to send thread message: %w", err)
	}
	return nil
}

// ArchiveThread archives and locks a thread.
func (a *Adapter) ArchiveThread(threadID string) error {
	archived := true
	locked := true
	_, err := a.session.ChannelEdit(threadID, &discordgo.ChannelEdit{
		Archived: &archived,
		Locked:   &locked,
	})
	if err != nil {
		return fmt.Errorf("failed to archive thread %s: %w", threadID, err)
	}
	return nil
}

// AssignRole adds a guild role to a user.
func (a *Adapter) AssignRole(userID, roleID string) error {
	if err := a.session.GuildMemberRoleAdd(a.guildID, userID, roleID); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// HasRole reports whether the user holds a guild role. A user who has left
// the guild holds no roles.
func (a *Adapter) HasRole(userID, roleID string) (bool, error) {
	member, err := a.session.GuildMember(a.guildID, userID)
	if err != nil {
		if isRESTErrorCode(err, discordgo.ErrCodeUnknownMember) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch guild member: %w", err)
	}
	for _, id := range member.Roles {
		if id == roleID {
			return true, nil
		}
	}
	return false, nil
}

// ThreadExists reports whether a thread channel is still present.
func (a *Adapter) ThreadExists(threadID string) (bool, error) {
	_, err := a.session.Channel(threadID)
	if err != nil {
		if isRESTErrorCode(err, discordgo.ErrCodeUnknownChannel) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch channel %s: %w", threadID, err)
	}
	return true, nil
}

func isRESTErrorCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == code
}
