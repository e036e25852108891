// Package relay is the core of the bot: the state machine that routes
// messages between a user's DM channel and the moderator thread bound to
// their codename, and the close/block transitions that tear a binding down.
package relay

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"modmail-bot/codename"
	"modmail-bot/database"
	"modmail-bot/models"
	"modmail-bot/utils"
)

var (
	// ErrUnknownCodename is surfaced verbatim to the moderator who typed a
	// codename with no active conversation behind it.
	ErrUnknownCodename = errors.New("no active conversation with that codename")

	// ErrInboxNotConfigured means a new conversation cannot be opened
	// because no inbox channel has been set.
	ErrInboxNotConfigured = errors.New("no inbox channel configured, run /inbox set first")

	// ErrBlockRoleNotConfigured means /block cannot work because no block
	// role has been set.
	ErrBlockRoleNotConfigured = errors.New("no block role configured, run /blockrole set first")
)

// createAttempts bounds how often the router re-rolls a codename when a
// concurrent creation stole the one it picked.
const createAttempts = 5

// Router decides, for each inbound event, what to persist and what platform
// action to emit. It keeps no state of its own; everything lives in the
// database, so a restart mid-stream loses nothing.
type Router struct {
	db       *sql.DB
	platform Platform
}

// NewRouter builds a router over the given store and platform.
func NewRouter(db *sql.DB, platform Platform) *Router {
	return &Router{db: db, platform: platform}
}

// UserMessage handles a DM from a user: dropped if the user is blocked,
// relayed into their existing thread, or a fresh conversation is opened.
func (r *Router) UserMessage(userID, content string) error {
	// The block check runs on every message, not just conversation
	// creation, so a user blocked mid-conversation is filtered immediately.
	blocked, err := r.isBlocked(userID)
	if err != nil {
		return fmt.Errorf("failed to check block status for user: %w", err)
	}
	if blocked {
		return nil
	}

	room, err := database.FindRoomByUser(r.db, userID)
	if err != nil {
		return err
	}
	if room == nil {
		room, err = r.openRoom(userID)
		if err != nil {
			if errors.Is(err, ErrInboxNotConfigured) {
				// A passive event has no moderator to answer to; make the
				// dropped message visible to operators instead.
				utils.Error("relay", "user_message", "Incoming DM could not be relayed: no inbox channel configured.")
			}
			return err
		}
	}

	if err := r.platform.SendThreadMessage(room.ThreadID, content); err != nil {
		return fmt.Errorf("failed to relay message into thread %s: %w", room.ThreadID, err)
	}
	return nil
}

// openRoom allocates a codename, creates the thread and persists the
// binding. The thread is created before the row so a platform failure
// leaves no orphaned row; losing the insert race instead falls back to the
// winner's room.
func (r *Router) openRoom(userID string) (*models.Room, error) {
	inbox, err := database.GetSetting(r.db, database.KeyInbox)
	if err != nil {
		return nil, err
	}
	if inbox == "" {
		return nil, ErrInboxNotConfigured
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		excluded, err := database.ActiveCodenames(r.db)
		if err != nil {
			return nil, err
		}
		name, err := codename.Generate(excluded)
		if err != nil {
			return nil, err
		}

		threadID, err := r.platform.CreateThread(inbox, name)
		if err != nil {
			return nil, fmt.Errorf("failed to create thread for new conversation: %w", err)
		}

		room, err := database.CreateRoom(r.db, userID, name, threadID)
		switch {
		case err == nil:
			utils.Info("relay", "open", fmt.Sprintf("Opened conversation %q.", name))
			return room, nil
		case errors.Is(err, database.ErrDuplicateUser):
			// Another event for the same user won the race. Use their room
			// and retire the thread we just created.
			r.archiveBestEffort(threadID, name)
			room, err := database.FindRoomByUser(r.db, userID)
			if err != nil {
				return nil, err
			}
			if room == nil {
				// The winner closed again already; next attempt recreates.
				continue
			}
			return room, nil
		case errors.Is(err, database.ErrDuplicateCodename):
			// The exclusion set was stale. Re-roll with a fresh one.
			r.archiveBestEffort(threadID, name)
			continue
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to open conversation after %d attempts", createAttempts)
}

// ThreadMessage handles a moderator posting in a thread: relayed to the
// bound user, or ignored when the thread belongs to no conversation.
func (r *Router) ThreadMessage(threadID, content string) error {
	room, err := database.FindRoomByThread(r.db, threadID)
	if err != nil {
		return err
	}
	if room == nil {
		// Unrelated thread, not ours to relay.
		return nil
	}
	if err := r.platform.SendDirectMessage(room.UserID, content); err != nil {
		return fmt.Errorf("failed to relay reply to user: %w", err)
	}
	return nil
}

// Close tears down the conversation holding a codename. The thread archive
// is best-effort; removal of the row is what actually closes it.
func (r *Router) Close(name string) error {
	room, err := database.FindRoomByCodename(r.db, name)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrUnknownCodename
	}

	r.archiveBestEffort(room.ThreadID, room.Codename)
	if _, err := database.RemoveRoomByCodename(r.db, room.Codename); err != nil {
		return err
	}
	utils.Info("relay", "close", fmt.Sprintf("Closed conversation %q.", room.Codename))
	return nil
}

// Block closes the conversation like Close and additionally assigns the
// configured block role. A failed role assignment is logged as a partial
// failure but does not keep the row around: a stale active room is worse
// than a user whose role an operator has to add by hand.
func (r *Router) Block(name string) error {
	roleID, err := database.GetSetting(r.db, database.KeyBlockRole)
	if err != nil {
		return err
	}
	if roleID == "" {
		return ErrBlockRoleNotConfigured
	}

	room, err := database.FindRoomByCodename(r.db, name)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrUnknownCodename
	}

	if err := r.platform.AssignRole(room.UserID, roleID); err != nil {
		utils.Warn("relay", "block", fmt.Sprintf("Could not assign block role for %q: %v. Conversation closed anyway; assign the role manually.", room.Codename, err))
	}

	r.archiveBestEffort(room.ThreadID, room.Codename)
	if _, err := database.RemoveRoomByCodename(r.db, room.Codename); err != nil {
		return err
	}
	utils.Info("relay", "block", fmt.Sprintf("Blocked and closed conversation %q.", room.Codename))
	return nil
}

// RemoveByThread drops the room bound to a thread, if any. Used when a
// moderator deletes a conversation thread out from under the bot.
func (r *Router) RemoveByThread(threadID string) error {
	room, err := database.FindRoomByThread(r.db, threadID)
	if err != nil {
		return err
	}
	if room == nil {
		return nil
	}
	if _, err := database.RemoveRoomByCodename(r.db, room.Codename); err != nil {
		return err
	}
	utils.Warn("relay", "thread_delete", fmt.Sprintf("Thread for %q was deleted externally; conversation closed.", room.Codename))
	return nil
}

// Reconcile prunes rooms whose thread no longer exists on the platform.
// Runs periodically; a deleted thread the gateway event missed (e.g. while
// the bot was offline) would otherwise strand the user forever.
func (r *Router) Reconcile() {
	rooms, err := database.AllRooms(r.db)
	if err != nil {
		log.Printf("Reconcile: failed to list rooms: %v", err)
		return
	}
	for _, room := range rooms {
		exists, err := r.platform.ThreadExists(room.ThreadID)
		if err != nil {
			log.Printf("Reconcile: could not check thread %s: %v", room.ThreadID, err)
			continue
		}
		if exists {
			continue
		}
		if _, err := database.RemoveRoomByCodename(r.db, room.Codename); err != nil {
			log.Printf("Reconcile: failed to remove room %q: %v", room.Codename, err)
			continue
		}
		utils.Warn("relay", "reconcile", fmt.Sprintf("Thread for %q is gone; conversation closed.", room.Codename))
	}
}

// isBlocked checks the user's block role per inbound message. With no role
// configured nobody counts as blocked.
func (r *Router) isBlocked(userID string) (bool, error) {
	roleID, err := database.GetSetting(r.db, database.KeyBlockRole)
	if err != nil {
		return false, err
	}
	if roleID == "" {
		return false, nil
	}
	return r.platform.HasRole(userID, roleID)
}

func (r *Router) archiveBestEffort(threadID, name string) {
	if err := r.platform.ArchiveThread(threadID); err != nil {
		log.Printf("Could not archive thread %s for %q: %v", threadID, name, err)
	}
}
