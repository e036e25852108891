package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// Keys for the config table. One guild, one value per key.
const (
	KeyInbox     = "inbox"     // channel threads are created under
	KeyBlockRole = "blockrole" // role assigned to blocked users
)

// GetSetting returns the value stored for key, or "" if the key is unset.
func GetSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM config WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores value under key, replacing any previous value.
func SetSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO config (key, value) VALUES (?, ?)
         ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// UnsetSetting removes key from the config table. Removing a key that was
// never set is not an error.
func UnsetSetting(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM config WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to unset setting %q: %w", key, err)
	}
	return nil
}
