//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"concord/broadcast"
	"concord/domain"
	"concord/errors"
	"concord/repositories"
)

// IMessageService is the mutation pipeline over both message domains. Each
// call runs the same sequence: validate, resolve membership, authorize, apply
// the state transition, persist, broadcast, respond. The first failing step
// terminates the request; a broadcast happens only after a committed
// persistence and its failure never fails the request.
type IMessageService interface {
	CreateMessage(ctx context.Context, cmd domain.CreateMessageCommand) (domain.Message, error)
	EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.Message, error)
	DeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) (domain.Message, error)
	ListMessages(ctx context.Context, cmd domain.ListMessagesCommand) ([]domain.Message, *string, error)
}

type MessageService struct {
	resolver  IMembershipResolver
	messages  repositories.IMessageRepository
	publisher broadcast.IPublisher
	log       *slog.Logger
	now       func() time.Time
}

func NewMessageService(resolver IMembershipResolver, messages repositories.IMessageRepository,
	publisher broadcast.IPublisher, log *slog.Logger) *MessageService {
	return &MessageService{
		resolver:  resolver,
		messages:  messages,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// CreateMessage posts a new message. Authorization is implicit: any resolved
// member of the scope may post.
func (s *MessageService) CreateMessage(ctx context.Context, cmd domain.CreateMessageCommand) (domain.Message, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Message{}, err
	}
	if cmd.ProfileID == "" {
		return domain.Message{}, errors.ErrUnauthenticated
	}
	member, err := s.resolver.Resolve(ctx, cmd.ProfileID, cmd.Scope)
	if err != nil {
		return domain.Message{}, err
	}

	message := domain.NewMessage(cmd.Scope, member, cmd.Content, cmd.AttachmentURL, s.now().UTC())
	if err := s.messages.CreateMessage(message); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	s.publish(broadcast.TopicFor(cmd.Scope, broadcast.EventCreated), message)
	return message, nil
}

// EditMessage rewrites the content of an existing message. Only the author
// may edit, regardless of role; a deleted target reads as absent.
func (s *MessageService) EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.Message, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Message{}, err
	}
	if cmd.ProfileID == "" {
		return domain.Message{}, errors.ErrUnauthenticated
	}
	member, err := s.resolver.Resolve(ctx, cmd.ProfileID, cmd.Scope)
	if err != nil {
		return domain.Message{}, err
	}

	now := s.now().UTC()
	updated, err := s.messages.UpdateMessage(cmd.Scope, cmd.MessageID, func(current domain.Message) (domain.Message, error) {
		if current.Deleted {
			return current, errors.ErrMessageNotFound
		}
		if err := domain.Authorize(domain.ActionEdit, cmd.Scope.Kind, member, current.IsAuthoredBy(member)); err != nil {
			return current, err
		}
		return current.ApplyEdit(cmd.Content, now)
	})
	if err != nil {
		return domain.Message{}, categorize(err)
	}

	s.publish(broadcast.TopicFor(cmd.Scope, broadcast.EventUpdated), updated)
	return updated, nil
}

// DeleteMessage soft-deletes a message. The author always may; in channel
// scope admins and moderators may as well. A second delete is rejected for
// everyone, before authorization is even considered.
func (s *MessageService) DeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) (domain.Message, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Message{}, err
	}
	if cmd.ProfileID == "" {
		return domain.Message{}, errors.ErrUnauthenticated
	}
	member, err := s.resolver.Resolve(ctx, cmd.ProfileID, cmd.Scope)
	if err != nil {
		return domain.Message{}, err
	}

	now := s.now().UTC()
	updated, err := s.messages.UpdateMessage(cmd.Scope, cmd.MessageID, func(current domain.Message) (domain.Message, error) {
		if current.Deleted {
			return current, errors.ErrInvalidState
		}
		if err := domain.Authorize(domain.ActionDelete, cmd.Scope.Kind, member, current.IsAuthoredBy(member)); err != nil {
			return current, err
		}
		return current.ApplySoftDelete(now)
	})
	if err != nil {
		return domain.Message{}, categorize(err)
	}

	s.publish(broadcast.TopicFor(cmd.Scope, broadcast.EventUpdated), updated)
	return updated, nil
}

// ListMessages reads a page of history for a scope the caller is a member of.
// Read-only; nothing is broadcast.
func (s *MessageService) ListMessages(ctx context.Context, cmd domain.ListMessagesCommand) ([]domain.Message, *string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}
	if cmd.ProfileID == "" {
		return nil, nil, errors.ErrUnauthenticated
	}
	if _, err := s.resolver.Resolve(ctx, cmd.ProfileID, cmd.Scope); err != nil {
		return nil, nil, err
	}
	messages, cursor, err := s.messages.GetMessages(cmd.Scope, cmd.Cursor)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return messages, cursor, nil
}

// publish is the notify half of the commit-then-notify sequence. The mutation
// is already durable; a transport failure is logged and never rolls it back
// or fails the response.
func (s *MessageService) publish(topic string, message domain.Message) {
	payload, err := json.Marshal(message)
	if err != nil {
		s.log.Error("Failed to encode broadcast payload", "topic", topic, "error", err)
		return
	}
	if err := s.publisher.Publish(topic, payload); err != nil {
		s.log.Error("Publish failed", "topic", topic, "error", err)
	}
}

// categorize passes pipeline sentinels through untouched and folds anything
// else, collaborator errors included, into ErrStorage.
func categorize(err error) error {
	for _, sentinel := range []error{
		errors.ErrMessageNotFound,
		errors.ErrUnauthorized,
		errors.ErrInvalidState,
		errors.ErrScopeNotFound,
	} {
		if stderrors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrStorage, err)
}
