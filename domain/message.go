package domain

import (
	"time"

	"concord/errors"

	"github.com/google/uuid"
)

// DeletedSentinel replaces the content of a soft-deleted message. The record
// itself is never removed.
const DeletedSentinel = "This message has been deleted"

// Message is a single chat message in exactly one channel or conversation.
// The authoring member is snapshotted on the record so the canonical
// representation carries its display profile without a join. Lifecycle is
// Active -> (edited)* -> Deleted; Deleted is terminal.
type Message struct {
	ID            uuid.UUID `json:"id"`
	Scope         ScopeRef  `json:"scope"`
	Author        Member    `json:"member"`
	Content       string    `json:"content"`
	AttachmentURL *string   `json:"attachmentUrl"`
	Deleted       bool      `json:"deleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewMessage constructs a message in the Active state.
func NewMessage(scope ScopeRef, author Member, content string, attachmentURL *string, now time.Time) Message {
	return Message{
		ID:            uuid.New(),
		Scope:         scope,
		Author:        author,
		Content:       content,
		AttachmentURL: attachmentURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsAuthoredBy reports whether the given member wrote the message.
func (m Message) IsAuthoredBy(member Member) bool {
	return m.Author.ID == member.ID
}

// Edited reports whether the message content changed after creation. There is
// no stored flag; the timestamps carry the state.
func (m Message) Edited() bool {
	return !m.Deleted && m.UpdatedAt.After(m.CreatedAt)
}

// ApplyEdit returns the message with new content. Editing a deleted message
// is rejected; the attachment is left untouched.
func (m Message) ApplyEdit(content string, now time.Time) (Message, error) {
	if m.Deleted {
		return m, errors.ErrInvalidState
	}
	m.Content = content
	m.UpdatedAt = now
	return m, nil
}

// ApplySoftDelete marks the message deleted, fixing its content to the
// deletion sentinel and clearing the attachment. A second delete is rejected,
// not silently accepted.
func (m Message) ApplySoftDelete(now time.Time) (Message, error) {
	if m.Deleted {
		return m, errors.ErrInvalidState
	}
	m.Deleted = true
	m.Content = DeletedSentinel
	m.AttachmentURL = nil
	m.UpdatedAt = now
	return m, nil
}
