package broadcast

import (
	"testing"

	"concord/domain"

	"github.com/stretchr/testify/require"
)

// Any subscriber knowing the scope must be able to compute the same topic
// without a directory lookup.
func Test_Topics_Are_Deterministic(t *testing.T) {
	req := require.New(t)

	channel := domain.ChannelScope("server-1", "chan-42")
	req.Equal("channel:chan-42:messages", TopicFor(channel, EventCreated))
	req.Equal("channel:chan-42:messages:update", TopicFor(channel, EventUpdated))

	conversation := domain.ConversationScope("conv-7")
	req.Equal("conversation:conv-7:messages", TopicFor(conversation, EventCreated))
	req.Equal("conversation:conv-7:messages:update", TopicFor(conversation, EventUpdated))

	// The server id plays no part: subscribers only know channel ids.
	req.Equal(TopicFor(domain.ChannelScope("other-server", "chan-42"), EventCreated),
		TopicFor(channel, EventCreated))
}
