package domain

import (
	"fmt"

	"concord/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// CreateMessageCommand posts a new message into a scope. At least one of
// content or attachment must be present.
type CreateMessageCommand struct {
	Scope         ScopeRef
	ProfileID     string
	Content       string `validate:"required_without=AttachmentURL"`
	AttachmentURL *string
}

func (c CreateMessageCommand) Validate() error {
	if err := c.Scope.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: content or attachment is required", errors.ErrBadRequest)
	}
	return nil
}

// EditMessageCommand rewrites the content of an existing message.
type EditMessageCommand struct {
	Scope     ScopeRef
	ProfileID string
	MessageID uuid.UUID
	Content   string `validate:"required"`
}

func (c EditMessageCommand) Validate() error {
	if err := c.Scope.Validate(); err != nil {
		return err
	}
	if c.MessageID == uuid.Nil {
		return fmt.Errorf("%w: message id is required", errors.ErrBadRequest)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: content is required", errors.ErrBadRequest)
	}
	return nil
}

// DeleteMessageCommand soft-deletes an existing message. No body fields.
type DeleteMessageCommand struct {
	Scope     ScopeRef
	ProfileID string
	MessageID uuid.UUID
}

func (c DeleteMessageCommand) Validate() error {
	if err := c.Scope.Validate(); err != nil {
		return err
	}
	if c.MessageID == uuid.Nil {
		return fmt.Errorf("%w: message id is required", errors.ErrBadRequest)
	}
	return nil
}

// ListMessagesCommand reads a page of a scope's history, newest first.
type ListMessagesCommand struct {
	Scope     ScopeRef
	ProfileID string
	Cursor    *string
}

func (c ListMessagesCommand) Validate() error {
	return c.Scope.Validate()
}
