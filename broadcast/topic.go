// Package broadcast maps message mutations to deterministic topics and fans
// them out through the external transport. Subscribers derive the same topic
// from the scope alone; there is no directory lookup.
package broadcast

import (
	"fmt"

	"concord/domain"
)

// Event distinguishes a newly created message from a mutated one.
type Event string

const (
	EventCreated Event = "created"
	EventUpdated Event = "updated"
)

// TopicFor derives the broadcast address for a scope and event kind, e.g.
// "channel:42:messages" for creations and "channel:42:messages:update" for
// edits and deletions.
func TopicFor(scope domain.ScopeRef, event Event) string {
	topic := fmt.Sprintf("%s:%s:messages", scope.Kind, scope.ID())
	if event == EventUpdated {
		topic += ":update"
	}
	return topic
}
