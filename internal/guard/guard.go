package guard

// Package guard implements the navigation guards: pure predicates evaluated
// once per navigation attempt against the session change stream. Each guard
// takes the first value observed on the stream and stops observing, so a
// decision can never be re-made mid-navigation as unrelated state changes
// arrive. Cancelling the context abandons the evaluation without side
// effects; the caller discards the stale result.

import (
	"context"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/nav"
	"github.com/onboardhq/onboard-ui-api/internal/session"
)

// Source is the session state feed a guard evaluates against. The channel
// must deliver the current state immediately (replay-of-latest);
// session.Store satisfies this.
type Source interface {
	Watch(ctx context.Context) <-chan session.State
}

// Decision is a guard's verdict for one navigation attempt. A denied
// navigation carries the redirect target; denial is normal control flow,
// not an error.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func allow() Decision { return Decision{Allow: true} }

func redirect(target string) Decision { return Decision{Allow: false, RedirectTo: target} }

// first takes a single value from the source and stops observing.
func first(ctx context.Context, src Source) (session.State, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	select {
	case state, ok := <-src.Watch(watchCtx):
		if !ok {
			return session.State{}, ctx.Err()
		}
		return state, nil
	case <-ctx.Done():
		return session.State{}, ctx.Err()
	}
}

// Entry guards routes that require a session: allow iff an identity is
// present, otherwise redirect to the login route.
func Entry(ctx context.Context, src Source) (Decision, error) {
	state, err := first(ctx, src)
	if err != nil {
		return Decision{}, err
	}
	if !state.Present {
		return redirect(nav.LoginRoute), nil
	}
	return allow(), nil
}

// Exit guards routes that require no session (the login page): allow iff no
// identity is present, otherwise redirect to the role's landing route.
func Exit(ctx context.Context, src Source) (Decision, error) {
	state, err := first(ctx, src)
	if err != nil {
		return Decision{}, err
	}
	if state.Present {
		return redirect(nav.LandingRoute(state.Identity.Role)), nil
	}
	return allow(), nil
}

// Role guards role-restricted routes: allow iff an identity is present and
// its role is in the allow-list. Denials redirect to the login route —
// fail closed, never silently render.
func Role(ctx context.Context, src Source, allowed ...domainauth.Role) (Decision, error) {
	state, err := first(ctx, src)
	if err != nil {
		return Decision{}, err
	}
	if state.Present && roleAllowed(state.Identity.Role, allowed) {
		return allow(), nil
	}
	return redirect(nav.LoginRoute), nil
}

func roleAllowed(role domainauth.Role, allowed []domainauth.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
