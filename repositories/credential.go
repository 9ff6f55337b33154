//go:generate go run go.uber.org/mock/mockgen -source=credential.go -destination=../mocks/mock_credential_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const credentialPrefix = "credential:"

type ICredentialRepository interface {
	Store(name, hash string) error
	Get(name string) (string, bool, error)
}

// CredentialRepository keeps the Argon2id password hashes of registered
// accounts. The hash string embeds its own parameters, so the record is a
// plain value with no envelope.
type CredentialRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCredentialRepository(db *badger.DB, log *slog.Logger) CredentialRepository {
	return CredentialRepository{db: db, log: log}
}

func (r CredentialRepository) Store(name, hash string) error {
	key := fmt.Sprintf("%s%s", credentialPrefix, name)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(hash))
	})
}

func (r CredentialRepository) Get(name string) (string, bool, error) {
	var hash string
	found := true
	key := fmt.Sprintf("%s%s", credentialPrefix, name)
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			hash = string(value)
			return nil
		})
	})
	if err != nil {
		return "", false, err
	}
	return hash, found, nil
}
