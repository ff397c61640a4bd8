//go:generate go run go.uber.org/mock/mockgen -source=scope.go -destination=../mocks/mock_scope_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"concord/domain"
	"concord/errors"

	"github.com/dgraph-io/badger/v4"
)

// IScopeRepository persists the containers messages live in: servers with
// their channels and members, and two-party conversations. Creation flows
// (invites, server setup) are external; this store only needs to be
// populatable and readable.
type IScopeRepository interface {
	CreateServer(server domain.Server) error
	CreateChannel(channel domain.Channel) error
	AddMember(serverID string, member domain.Member) error
	CreateConversation(conversation domain.Conversation) error
	GetChannel(serverID, channelID string) (domain.Channel, error)
	GetMember(serverID, profileID string) (domain.Member, error)
	GetConversation(id string) (domain.Conversation, error)
}

type ScopeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewScopeRepository(db *badger.DB, log *slog.Logger) ScopeRepository {
	return ScopeRepository{db: db, log: log}
}

// Key layout:
//
//	server:{serverID}
//	channel:{serverID}:{channelID}
//	member:{serverID}:{profileID}
//	conv:{conversationID}
//
// Channels and members are keyed under their server so a lookup can never
// cross server boundaries by id alone.
func serverKey(id string) []byte {
	return []byte(fmt.Sprintf("server:%s", id))
}

func channelKey(serverID, id string) []byte {
	return []byte(fmt.Sprintf("channel:%s:%s", serverID, id))
}

func memberKey(serverID, profileID string) []byte {
	return []byte(fmt.Sprintf("member:%s:%s", serverID, profileID))
}

func conversationKey(id string) []byte {
	return []byte(fmt.Sprintf("conv:%s", id))
}

func (r ScopeRepository) CreateServer(server domain.Server) error {
	return r.put(serverKey(server.ID), server)
}

func (r ScopeRepository) CreateChannel(channel domain.Channel) error {
	return r.put(channelKey(channel.ServerID, channel.ID), channel)
}

func (r ScopeRepository) AddMember(serverID string, member domain.Member) error {
	return r.put(memberKey(serverID, member.ProfileID), member)
}

func (r ScopeRepository) CreateConversation(conversation domain.Conversation) error {
	return r.put(conversationKey(conversation.ID), conversation)
}

func (r ScopeRepository) GetChannel(serverID, channelID string) (domain.Channel, error) {
	var channel domain.Channel
	err := r.get(channelKey(serverID, channelID), &channel)
	return channel, err
}

func (r ScopeRepository) GetMember(serverID, profileID string) (domain.Member, error) {
	var member domain.Member
	err := r.get(memberKey(serverID, profileID), &member)
	return member, err
}

func (r ScopeRepository) GetConversation(id string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.get(conversationKey(id), &conversation)
	return conversation, err
}

func (r ScopeRepository) put(key []byte, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}

// get unmarshals the record at key. A missing key surfaces as ErrScopeNotFound;
// the caller cannot tell a missing container from a missing membership, which
// is the intended behavior.
func (r ScopeRepository) get(key []byte, value any) error {
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, value)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrScopeNotFound
	}
	return err
}
