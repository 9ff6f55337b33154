//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// participantPrefix namespaces the social-graph records so they can coexist
// with other buckets (credentials) in the same Badger instance.
const participantPrefix = "participant:"

type IParticipantRepository interface {
	Store(record DiskParticipant) error
	Load() ([]DiskParticipant, error)
	Delete(name string) error
}

// ParticipantRepository persists the durable portion of a participant: its
// name, profile text, and contact list. Presence status, the live session,
// and group memberships are deliberately absent from the record; they are
// session state and must come back empty after a restart.
type ParticipantRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewParticipantRepository(db *badger.DB, log *slog.Logger) ParticipantRepository {
	return ParticipantRepository{db: db, log: log}
}

type DiskParticipant struct {
	Name     string   `json:"name"`
	Info     string   `json:"info,omitempty"`
	Contacts []string `json:"contacts,omitempty"`
}

// Store writes or overwrites the record under "participant:{name}". Records
// are small and written whole on every contact mutation, which keeps the
// write path trivially idempotent.
func (r ParticipantRepository) Store(record DiskParticipant) error {
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%s", participantPrefix, record.Name)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Load returns every persisted participant record via a prefix scan.
func (r ParticipantRepository) Load() ([]DiskParticipant, error) {
	var records []DiskParticipant
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		prefix := []byte(participantPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var record DiskParticipant
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug(fmt.Sprintf("Loaded %d participant records", len(records)))
	return records, nil
}

// Delete removes a record; used by administrative cleanup.
func (r ParticipantRepository) Delete(name string) error {
	key := fmt.Sprintf("%s%s", participantPrefix, name)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
