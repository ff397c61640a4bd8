package services

import (
	"context"
	"log/slog"
	"testing"

	"concord/domain"
	"concord/errors"
	"concord/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMembershipResolver_ChannelScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scopes := mocks.NewMockIScopeRepository(ctrl)
	resolver := NewMembershipResolver(scopes, slog.Default())
	scope := domain.ChannelScope("server-1", "chan-1")

	t.Run("should resolve a member of an existing channel", func(t *testing.T) {
		req := require.New(t)
		member := domain.Member{ID: "member-1", ProfileID: "profile-1", Role: domain.RoleGuest}

		scopes.EXPECT().GetChannel("server-1", "chan-1").Return(domain.Channel{ID: "chan-1", ServerID: "server-1"}, nil)
		scopes.EXPECT().GetMember("server-1", "profile-1").Return(member, nil)

		resolved, err := resolver.Resolve(context.Background(), "profile-1", scope)
		req.NoError(err)
		req.Equal(member, resolved)
	})

	t.Run("should not reach the member lookup when the channel is missing", func(t *testing.T) {
		req := require.New(t)

		scopes.EXPECT().GetChannel("server-1", "chan-1").Return(domain.Channel{}, errors.ErrScopeNotFound)
		scopes.EXPECT().GetMember(gomock.Any(), gomock.Any()).Times(0)

		_, err := resolver.Resolve(context.Background(), "profile-1", scope)
		req.ErrorIs(err, errors.ErrScopeNotFound)
	})

	t.Run("should report a non-member identically to a missing scope", func(t *testing.T) {
		req := require.New(t)

		scopes.EXPECT().GetChannel("server-1", "chan-1").Return(domain.Channel{ID: "chan-1"}, nil)
		scopes.EXPECT().GetMember("server-1", "stranger").Return(domain.Member{}, errors.ErrScopeNotFound)

		_, err := resolver.Resolve(context.Background(), "stranger", scope)
		req.ErrorIs(err, errors.ErrScopeNotFound)
	})
}

func TestMembershipResolver_ConversationScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scopes := mocks.NewMockIScopeRepository(ctrl)
	resolver := NewMembershipResolver(scopes, slog.Default())
	scope := domain.ConversationScope("conv-1")
	conversation := domain.Conversation{
		ID:        "conv-1",
		MemberOne: domain.Member{ID: "member-x", ProfileID: "profile-x"},
		MemberTwo: domain.Member{ID: "member-y", ProfileID: "profile-y"},
	}

	t.Run("should resolve either participant", func(t *testing.T) {
		req := require.New(t)

		scopes.EXPECT().GetConversation("conv-1").Return(conversation, nil).Times(2)

		one, err := resolver.Resolve(context.Background(), "profile-x", scope)
		req.NoError(err)
		req.Equal("member-x", one.ID)

		two, err := resolver.Resolve(context.Background(), "profile-y", scope)
		req.NoError(err)
		req.Equal("member-y", two.ID)
	})

	t.Run("should reject an outsider the same way as a missing conversation", func(t *testing.T) {
		req := require.New(t)

		scopes.EXPECT().GetConversation("conv-1").Return(conversation, nil)
		_, errOutsider := resolver.Resolve(context.Background(), "profile-z", scope)

		scopes.EXPECT().GetConversation("conv-1").Return(domain.Conversation{}, errors.ErrScopeNotFound)
		_, errMissing := resolver.Resolve(context.Background(), "profile-x", scope)

		req.ErrorIs(errOutsider, errors.ErrScopeNotFound)
		req.ErrorIs(errMissing, errors.ErrScopeNotFound)
		req.Equal(errMissing.Error(), errOutsider.Error())
	})
}
