package domain

import (
	"fmt"
	"testing"

	"concord/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Channel scope: Delete succeeds iff author or moderating role; Edit succeeds
// iff author, regardless of role.
func Test_Authorize_Channel_Scope(t *testing.T) {
	tests := []struct {
		role     Role
		isAuthor bool
		action   Action
		allowed  bool
	}{
		{RoleGuest, true, ActionEdit, true},
		{RoleGuest, true, ActionDelete, true},
		{RoleGuest, false, ActionEdit, false},
		{RoleGuest, false, ActionDelete, false},
		{RoleModerator, false, ActionDelete, true},
		{RoleModerator, false, ActionEdit, false},
		{RoleModerator, true, ActionEdit, true},
		{RoleAdmin, false, ActionDelete, true},
		{RoleAdmin, false, ActionEdit, false},
		{RoleAdmin, true, ActionDelete, true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s_%s_author_%t", tt.role, tt.action, tt.isAuthor)
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			err := Authorize(tt.action, ScopeChannel, Member{ID: "m1", Role: tt.role}, tt.isAuthor)
			if tt.allowed {
				req.NoError(err)
			} else {
				req.ErrorIs(err, errors.ErrUnauthorized)
			}
		})
	}
}

// Conversation scope: no roles exist, both actions require authorship.
func Test_Authorize_Conversation_Scope(t *testing.T) {
	req := require.New(t)
	member := Member{ID: "m1"}

	req.NoError(Authorize(ActionEdit, ScopeConversation, member, true))
	req.NoError(Authorize(ActionDelete, ScopeConversation, member, true))
	req.ErrorIs(Authorize(ActionEdit, ScopeConversation, member, false), errors.ErrUnauthorized)
	req.ErrorIs(Authorize(ActionDelete, ScopeConversation, member, false), errors.ErrUnauthorized)

	// A role smuggled onto a conversation member must not grant anything.
	moderator := Member{ID: "m2", Role: RoleModerator}
	req.ErrorIs(Authorize(ActionDelete, ScopeConversation, moderator, false), errors.ErrUnauthorized)
}

func Test_Command_Validation(t *testing.T) {
	t.Run("should require content or attachment on create", func(t *testing.T) {
		req := require.New(t)
		cmd := CreateMessageCommand{Scope: ChannelScope("s1", "c1"), ProfileID: "p1"}
		req.ErrorIs(cmd.Validate(), errors.ErrBadRequest)

		cmd.Content = "hi"
		req.NoError(cmd.Validate())
	})

	t.Run("should accept attachment-only create", func(t *testing.T) {
		req := require.New(t)
		url := "https://files.example/doc.pdf"
		cmd := CreateMessageCommand{Scope: ChannelScope("s1", "c1"), ProfileID: "p1", AttachmentURL: &url}
		req.NoError(cmd.Validate())
	})

	t.Run("should reject missing scope identifiers before any lookup", func(t *testing.T) {
		req := require.New(t)
		cmd := CreateMessageCommand{Scope: ChannelScope("s1", ""), ProfileID: "p1", Content: "hi"}
		req.ErrorIs(cmd.Validate(), errors.ErrBadRequest)

		cmd = CreateMessageCommand{Scope: ConversationScope(""), ProfileID: "p1", Content: "hi"}
		req.ErrorIs(cmd.Validate(), errors.ErrBadRequest)
	})

	t.Run("should require content on edit", func(t *testing.T) {
		req := require.New(t)
		cmd := EditMessageCommand{Scope: ConversationScope("conv-1"), ProfileID: "p1", MessageID: uuid.New()}
		req.ErrorIs(cmd.Validate(), errors.ErrBadRequest)

		cmd.Content = "fixed"
		req.NoError(cmd.Validate())
	})
}
