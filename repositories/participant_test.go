package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Store_And_Load_Participants(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewParticipantRepository(db, slog.Default())
	records := []DiskParticipant{
		{Name: "alice", Info: "hello", Contacts: []string{"bob", "clara"}},
		{Name: "bob"},
		{Name: "clara", Contacts: []string{"alice"}},
	}
	for _, record := range records {
		req.NoError(repository.Store(record))
	}

	loaded, err := repository.Load()
	req.NoError(err)
	req.ElementsMatch(records, loaded)
}

func Test_Store_Overwrites_Existing_Record(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewParticipantRepository(db, slog.Default())
	req.NoError(repository.Store(DiskParticipant{Name: "alice", Contacts: []string{"bob"}}))
	req.NoError(repository.Store(DiskParticipant{Name: "alice", Info: "updated"}))

	loaded, err := repository.Load()
	req.NoError(err)
	req.Len(loaded, 1)
	req.Equal("updated", loaded[0].Info)
	req.Empty(loaded[0].Contacts)
}

func Test_Delete_Participant(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewParticipantRepository(db, slog.Default())
	req.NoError(repository.Store(DiskParticipant{Name: "alice"}))
	req.NoError(repository.Store(DiskParticipant{Name: "bob"}))
	req.NoError(repository.Delete("alice"))

	loaded, err := repository.Load()
	req.NoError(err)
	req.Len(loaded, 1)
	req.Equal("bob", loaded[0].Name)
}

func Test_Load_Ignores_Other_Buckets(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	credentials := NewCredentialRepository(db, slog.Default())
	req.NoError(credentials.Store("alice", "$argon2id$fake"))

	participants := NewParticipantRepository(db, slog.Default())
	loaded, err := participants.Load()
	req.NoError(err)
	req.Empty(loaded)
}
