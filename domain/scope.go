// Package domain contains core concepts of the chat platform: scopes, members,
// messages and the rules governing who may mutate them. Everything here is
// pure; persistence and transport live elsewhere.
package domain

import (
	"concord/errors"
	"fmt"
)

// ScopeKind tags the two message domains sharing one mutation pipeline.
type ScopeKind string

const (
	ScopeChannel      ScopeKind = "channel"
	ScopeConversation ScopeKind = "conversation"
)

// ScopeRef identifies the container a message belongs to: a channel within a
// server, or a two-party conversation. A message's scope never changes after
// creation.
type ScopeRef struct {
	Kind           ScopeKind `json:"kind"`
	ServerID       string    `json:"serverId,omitempty"`
	ChannelID      string    `json:"channelId,omitempty"`
	ConversationID string    `json:"conversationId,omitempty"`
}

func ChannelScope(serverID, channelID string) ScopeRef {
	return ScopeRef{Kind: ScopeChannel, ServerID: serverID, ChannelID: channelID}
}

func ConversationScope(conversationID string) ScopeRef {
	return ScopeRef{Kind: ScopeConversation, ConversationID: conversationID}
}

// ID returns the identifier messages are keyed under: the channel id for
// channel scope, the conversation id otherwise.
func (s ScopeRef) ID() string {
	if s.Kind == ScopeChannel {
		return s.ChannelID
	}
	return s.ConversationID
}

// Validate checks that the identifiers required by the scope kind are present.
// Missing identifiers fail before any lookup happens.
func (s ScopeRef) Validate() error {
	switch s.Kind {
	case ScopeChannel:
		if s.ServerID == "" || s.ChannelID == "" {
			return fmt.Errorf("%w: server and channel id are required", errors.ErrBadRequest)
		}
	case ScopeConversation:
		if s.ConversationID == "" {
			return fmt.Errorf("%w: conversation id is required", errors.ErrBadRequest)
		}
	default:
		return fmt.Errorf("%w: unknown scope kind %q", errors.ErrBadRequest, s.Kind)
	}
	return nil
}

type Server struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Channel struct {
	ID       string `json:"id"`
	ServerID string `json:"serverId"`
	Name     string `json:"name"`
}

// Conversation holds exactly two members. There are no roles here; membership
// alone decides what a caller may do.
type Conversation struct {
	ID        string `json:"id"`
	MemberOne Member `json:"memberOne"`
	MemberTwo Member `json:"memberTwo"`
}

// Participant returns the member record matching the given profile, if the
// profile takes part in the conversation.
func (c Conversation) Participant(profileID string) (Member, bool) {
	if c.MemberOne.ProfileID == profileID {
		return c.MemberOne, true
	}
	if c.MemberTwo.ProfileID == profileID {
		return c.MemberTwo, true
	}
	return Member{}, false
}
