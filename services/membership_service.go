//go:generate go run go.uber.org/mock/mockgen -source=membership_service.go -destination=../mocks/mock_membership_resolver.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"concord/domain"
	"concord/errors"
	"concord/repositories"
)

// IMembershipResolver answers "who is this profile within this scope". Every
// failure mode reads as ErrScopeNotFound: a missing server, channel or
// conversation and a caller without a member record are indistinguishable.
type IMembershipResolver interface {
	Resolve(ctx context.Context, profileID string, scope domain.ScopeRef) (domain.Member, error)
}

type MembershipResolver struct {
	scopes repositories.IScopeRepository
	log    *slog.Logger
}

func NewMembershipResolver(scopes repositories.IScopeRepository, log *slog.Logger) *MembershipResolver {
	return &MembershipResolver{scopes: scopes, log: log}
}

// Resolve is read-only; it never creates membership state.
func (r *MembershipResolver) Resolve(ctx context.Context, profileID string, scope domain.ScopeRef) (domain.Member, error) {
	switch scope.Kind {
	case domain.ScopeChannel:
		// The channel must exist within the named server. A missing channel
		// reads the same as a missing membership.
		if _, err := r.scopes.GetChannel(scope.ServerID, scope.ChannelID); err != nil {
			return domain.Member{}, err
		}
		return r.scopes.GetMember(scope.ServerID, profileID)
	case domain.ScopeConversation:
		conversation, err := r.scopes.GetConversation(scope.ConversationID)
		if err != nil {
			return domain.Member{}, err
		}
		member, ok := conversation.Participant(profileID)
		if !ok {
			return domain.Member{}, errors.ErrScopeNotFound
		}
		return member, nil
	}
	return domain.Member{}, errors.ErrScopeNotFound
}
