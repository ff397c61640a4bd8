package domain

import (
	"testing"
	"time"

	"concord/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_New_Message_Starts_Active(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	author := Member{ID: "member-1", ProfileID: "profile-1", Role: RoleGuest}

	message := NewMessage(ChannelScope("server-1", "chan-1"), author, "hi", nil, now)

	req.False(message.Deleted)
	req.False(message.Edited())
	req.Equal("hi", message.Content)
	req.Equal(author, message.Author)
	req.Equal(now, message.CreatedAt)
	req.Equal(now, message.UpdatedAt)
	req.NotEqual(message.ID.String(), "")
}

func Test_Edit_Updates_Content_And_Keeps_Attachment(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	attachment := lo.ToPtr("https://files.example/cat.png")
	message := NewMessage(ChannelScope("server-1", "chan-1"), Member{ID: "m1"}, "first", attachment, now)

	edited, err := message.ApplyEdit("second", now.Add(time.Minute))

	req.NoError(err)
	req.Equal("second", edited.Content)
	req.Equal(attachment, edited.AttachmentURL)
	req.True(edited.Edited())
	// The original value is untouched; transitions return copies.
	req.Equal("first", message.Content)
}

func Test_Soft_Delete_Fixes_Sentinel_And_Clears_Attachment(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	attachment := lo.ToPtr("https://files.example/cat.png")
	message := NewMessage(ConversationScope("conv-1"), Member{ID: "m1"}, "secret", attachment, now)

	deleted, err := message.ApplySoftDelete(now.Add(time.Minute))

	req.NoError(err)
	req.True(deleted.Deleted)
	req.Equal(DeletedSentinel, deleted.Content)
	req.Nil(deleted.AttachmentURL)
	req.False(deleted.Edited())
}

func Test_Deleted_Is_Terminal(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	message := NewMessage(ChannelScope("server-1", "chan-1"), Member{ID: "m1"}, "hi", nil, now)

	deleted, err := message.ApplySoftDelete(now)
	req.NoError(err)

	_, err = deleted.ApplyEdit("rewrite attempt", now)
	req.ErrorIs(err, errors.ErrInvalidState)

	_, err = deleted.ApplySoftDelete(now)
	req.ErrorIs(err, errors.ErrInvalidState)

	req.Equal(DeletedSentinel, deleted.Content)
}
