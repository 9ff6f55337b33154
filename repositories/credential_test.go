package repositories

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Store_And_Get_Credential(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewCredentialRepository(db, slog.Default())
	req.NoError(repository.Store("alice", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"))

	hash, found, err := repository.Get("alice")
	req.NoError(err)
	req.True(found)
	req.Equal("$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", hash)
}

func Test_Get_Unknown_Credential(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewCredentialRepository(db, slog.Default())
	hash, found, err := repository.Get("ghost")
	req.NoError(err)
	req.False(found)
	req.Empty(hash)
}
