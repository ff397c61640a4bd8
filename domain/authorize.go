package domain

import "concord/errors"

// Action is a mutation a caller can attempt on an existing message.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Authorize decides whether a resolved member may perform an action on a
// message. It is a pure function of (action, scope kind, role, authorship):
//
//   - channel scope: Delete needs authorship or a moderating role; Edit needs
//     authorship only. Moderators may remove content but not rewrite it.
//   - conversation scope: both actions need authorship, no roles exist.
//
// Denial is always ErrUnauthorized; existence questions are settled before
// this point.
func Authorize(action Action, kind ScopeKind, member Member, isAuthor bool) error {
	if isAuthor {
		return nil
	}
	if kind == ScopeChannel && action == ActionDelete && member.Role.CanModerate() {
		return nil
	}
	return errors.ErrUnauthorized
}
