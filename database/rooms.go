package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modmail-bot/models"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateUser is returned by CreateRoom when the user already has an
	// active room. The router treats this as "someone else won the race".
	ErrDuplicateUser = errors.New("user already has an active room")

	// ErrDuplicateCodename is returned by CreateRoom when the codename is
	// already held by an active room.
	ErrDuplicateCodename = errors.New("codename already in use")
)

// CreateRoom inserts a new room binding user, codename and thread. The
// duplicate checks ride on the table's UNIQUE constraints so that the check
// and the insert are a single atomic step.
func CreateRoom(db *sql.DB, userID, codename, threadID string) (*models.Room, error) {
	var roomID int64
	err := db.QueryRow(
		`INSERT INTO rooms (codename, thread_id, user_id) VALUES (?, ?, ?) RETURNING room_id`,
		codename, threadID, userID,
	).Scan(&roomID)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			if strings.Contains(sqliteErr.Error(), "rooms.user_id") {
				return nil, ErrDuplicateUser
			}
			if strings.Contains(sqliteErr.Error(), "rooms.codename") {
				return nil, ErrDuplicateCodename
			}
		}
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}

	return &models.Room{
		RoomID:   roomID,
		Codename: codename,
		ThreadID: threadID,
		UserID:   userID,
	}, nil
}

// FindRoomByUser returns the active room for a user, or nil if none exists.
func FindRoomByUser(db *sql.DB, userID string) (*models.Room, error) {
	return findRoom(db, "user_id", userID)
}

// FindRoomByCodename returns the active room holding a codename, or nil.
func FindRoomByCodename(db *sql.DB, codename string) (*models.Room, error) {
	return findRoom(db, "codename", codename)
}

// FindRoomByThread returns the room bound to a thread, or nil.
func FindRoomByThread(db *sql.DB, threadID string) (*models.Room, error) {
	return findRoom(db, "thread_id", threadID)
}

func findRoom(db *sql.DB, column, value string) (*models.Room, error) {
	var room models.Room
	query := fmt.Sprintf(`SELECT room_id, codename, thread_id, user_id FROM rooms WHERE %s = ?`, column)
	err := db.QueryRow(query, value).Scan(&room.RoomID, &room.Codename, &room.ThreadID, &room.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query room by %s: %w", column, err)
	}
	return &room, nil
}

// RemoveRoomByCodename deletes the room holding a codename and returns it,
// or nil if no active room holds that codename. Removal is how a
// conversation is closed; the codename becomes reusable immediately.
func RemoveRoomByCodename(db *sql.DB, codename string) (*models.Room, error) {
	var room models.Room
	err := db.QueryRow(
		`DELETE FROM rooms WHERE codename = ? RETURNING room_id, codename, thread_id, user_id`,
		codename,
	).Scan(&room.RoomID, &room.Codename, &room.ThreadID, &room.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to remove room %q: %w", codename, err)
	}
	return &room, nil
}

// AllRooms returns every active room.
func AllRooms(db *sql.DB) ([]models.Room, error) {
	rows, err := db.Query(`SELECT room_id, codename, thread_id, user_id FROM rooms`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.RoomID, &room.Codename, &room.ThreadID, &room.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// ActiveCodenames returns the codenames of all active rooms as a map for
// quick lookups, used as the generator's exclusion set.
func ActiveCodenames(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT codename FROM rooms`)
	if err != nil {
		return nil, fmt.Errorf("failed to query codenames: %w", err)
	}
	defer rows.Close()

	codenames := make(map[string]bool)
	for rows.Next() {
		var codename string
		if err := rows.Scan(&codename); err != nil {
			return nil, fmt.Errorf("failed to scan codename: %w", err)
		}
		codenames[codename] = true
	}
	return codenames, rows.Err()
}
