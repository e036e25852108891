package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_CRUD(t *testing.T) {
	db := newTestDB(t)

	// Unset keys read back as empty.
	value, err := GetSetting(db, KeyInbox)
	require.NoError(t, err)
	assert.Empty(t, value)

	// Set
	require.NoError(t, SetSetting(db, KeyInbox, "channel-456"))
	require.NoError(t, SetSetting(db, KeyBlockRole, "role-123"))

	value, err = GetSetting(db, KeyInbox)
	require.NoError(t, err)
	assert.Equal(t, "channel-456", value)

	value, err = GetSetting(db, KeyBlockRole)
	require.NoError(t, err)
	assert.Equal(t, "role-123", value)

	// Update overwrites.
	require.NoError(t, SetSetting(db, KeyInbox, "channel-654"))
	value, err = GetSetting(db, KeyInbox)
	require.NoError(t, err)
	assert.Equal(t, "channel-654", value)

	// Unset
	require.NoError(t, UnsetSetting(db, KeyInbox))
	value, err = GetSetting(db, KeyInbox)
	require.NoError(t, err)
	assert.Empty(t, value)

	// Unsetting a missing key is fine.
	require.NoError(t, UnsetSetting(db, "never-set"))
}
