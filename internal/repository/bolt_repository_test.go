package repository

import (
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/stretchr/testify/require"
)

func openTestBolt(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := OpenBolt(filepath.Join(t.TempDir(), "keepnote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBoltRepositories(t *testing.T) {
	t.Run("note", func(t *testing.T) { testNoteRepository(t, NewBoltNoteRepository(openTestBolt(t))) })
	t.Run("reminder", func(t *testing.T) { testReminderRepository(t, NewBoltReminderRepository(openTestBolt(t))) })
	t.Run("user", func(t *testing.T) { testUserRepository(t, NewBoltUserRepository(openTestBolt(t))) })
}

func TestNoteKey_SortsNumerically(t *testing.T) {
	require.Less(t, string(noteKey(2)), string(noteKey(10)))
}
