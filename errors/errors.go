package errors

import "fmt"

// Failure taxonomy of the mutation pipeline. Every request terminates at the
// first step that fails; handlers map these sentinels to wire statuses.
var (
	ErrBadRequest      = fmt.Errorf("bad request")
	ErrUnauthenticated = fmt.Errorf("unauthenticated")
	// ErrScopeNotFound covers both a missing server/channel/conversation and a
	// caller that is not a member of an existing one. The two cases are
	// deliberately indistinguishable so that responses never leak whether a
	// scope exists.
	ErrScopeNotFound   = fmt.Errorf("scope not found")
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrUnauthorized    = fmt.Errorf("unauthorized")
	ErrInvalidState    = fmt.Errorf("invalid message state")
	ErrStorage         = fmt.Errorf("storage failure")
	ErrInternal        = fmt.Errorf("internal failure")
)
