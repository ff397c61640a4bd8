package repositories

import (
	"log/slog"
	"testing"

	"concord/domain"
	"concord/errors"

	"github.com/stretchr/testify/require"
)

func Test_Member_Lookup_Is_Scoped_To_Server(t *testing.T) {
	req := require.New(t)
	repository := NewScopeRepository(openTestDB(t), slog.Default())

	req.NoError(repository.CreateServer(domain.Server{ID: "server-1", Name: "general"}))
	member := domain.Member{
		ID:        "member-1",
		ProfileID: "profile-1",
		Role:      domain.RoleModerator,
		Profile:   domain.Profile{ID: "profile-1", Name: "Alice"},
	}
	req.NoError(repository.AddMember("server-1", member))

	fetched, err := repository.GetMember("server-1", "profile-1")
	req.NoError(err)
	req.Equal(member, fetched)

	// Same profile, different server: reads as a missing scope.
	_, err = repository.GetMember("server-2", "profile-1")
	req.ErrorIs(err, errors.ErrScopeNotFound)
}

func Test_Channel_Lookup(t *testing.T) {
	req := require.New(t)
	repository := NewScopeRepository(openTestDB(t), slog.Default())

	channel := domain.Channel{ID: "chan-1", ServerID: "server-1", Name: "general"}
	req.NoError(repository.CreateChannel(channel))

	fetched, err := repository.GetChannel("server-1", "chan-1")
	req.NoError(err)
	req.Equal(channel, fetched)

	_, err = repository.GetChannel("server-2", "chan-1")
	req.ErrorIs(err, errors.ErrScopeNotFound)
}

func Test_Conversation_Lookup(t *testing.T) {
	req := require.New(t)
	repository := NewScopeRepository(openTestDB(t), slog.Default())

	conversation := domain.Conversation{
		ID:        "conv-1",
		MemberOne: domain.Member{ID: "member-x", ProfileID: "profile-x"},
		MemberTwo: domain.Member{ID: "member-y", ProfileID: "profile-y"},
	}
	req.NoError(repository.CreateConversation(conversation))

	fetched, err := repository.GetConversation("conv-1")
	req.NoError(err)
	req.Equal(conversation, fetched)

	_, err = repository.GetConversation("conv-2")
	req.ErrorIs(err, errors.ErrScopeNotFound)
}
