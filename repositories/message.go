//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"concord/domain"
	"concord/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// IMessageRepository persists messages. UpdateMessage runs its read-modify-write
// inside a single transaction keyed by message id; that per-id atomicity is the
// guarantee the mutation pipeline builds on.
type IMessageRepository interface {
	CreateMessage(message domain.Message) error
	GetMessage(scope domain.ScopeRef, id uuid.UUID) (domain.Message, error)
	UpdateMessage(scope domain.ScopeRef, id uuid.UUID, apply func(domain.Message) (domain.Message, error)) (domain.Message, error)
	GetMessages(scope domain.ScopeRef, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// Records are keyed "msg:{kind}:{scopeID}:{messageID}" so an id lookup scoped
// to the wrong channel or conversation misses. A second key
// "msgidx:{kind}:{scopeID}:{timestamp_padded}:{messageID}" points at the record
// key to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep history pagination stable across edits, since CreatedAt never changes.
func messageKey(scope domain.ScopeRef, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%s:%s", scope.Kind, scope.ID(), id))
}

func messageIndexKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("msgidx:%s:%s:%019d:%s",
		message.Scope.Kind,
		message.Scope.ID(),
		message.CreatedAt.UnixNano(),
		message.ID,
	))
}

func (m MessageRepository) CreateMessage(message domain.Message) error {
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	recordKey := messageKey(message.Scope, message.ID)
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(recordKey, bytes); err != nil {
			return err
		}
		return txn.Set(messageIndexKey(message), recordKey)
	})
}

func (m MessageRepository) GetMessage(scope domain.ScopeRef, id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(messageKey(scope, id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &message)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	return message, err
}

// UpdateMessage loads the message, applies the transition and writes the
// result back, all inside one transaction. An error from apply aborts the
// transaction and is returned as-is, so state-machine rejections pass through
// untouched. On a write conflict the whole transaction is retried: the loser
// of a race re-reads the committed state and the caller observes the
// state-machine verdict, never a corrupted intermediate.
func (m MessageRepository) UpdateMessage(scope domain.ScopeRef, id uuid.UUID,
	apply func(domain.Message) (domain.Message, error)) (domain.Message, error) {
	var updated domain.Message
	key := messageKey(scope, id)
	for {
		err := m.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(key)
			if err != nil {
				return err
			}
			var current domain.Message
			if err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &current)
			}); err != nil {
				return err
			}
			updated, err = apply(current)
			if err != nil {
				return err
			}
			bytes, err := json.Marshal(updated)
			if err != nil {
				return err
			}
			return txn.Set(key, bytes)
		})
		switch {
		case stderrors.Is(err, badger.ErrConflict):
			continue
		case stderrors.Is(err, badger.ErrKeyNotFound):
			return domain.Message{}, errors.ErrMessageNotFound
		case err != nil:
			return domain.Message{}, err
		}
		return updated, nil
	}
}

// GetMessages retrieves a page of a scope's messages using a reverse prefix
// scan over the time index, newest first. The returned cursor is the index key
// suffix of the last message and resumes the scan on the next call. It stops
// collecting once the configured limitMessages is reached.
func (m MessageRepository) GetMessages(scope domain.ScopeRef, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msgidx:%s:%s:", scope.Kind, scope.ID())
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])

			var recordKey []byte
			if err := item.Value(func(val []byte) error {
				recordKey = append([]byte{}, val...)
				return nil
			}); err != nil {
				return err
			}
			record, err := txn.Get(recordKey)
			if err != nil {
				return err
			}
			var message domain.Message
			if err = record.Value(func(val []byte) error {
				return json.Unmarshal(val, &message)
			}); err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return messages, &lastKey, nil
}
