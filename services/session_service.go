package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
	"github.com/Neon18H/APP-WEB-FILPP/supabase"
)

// SessionState is a terminal or intermediate state of the per-request
// session lifecycle.
type SessionState int

const (
	// StateUnauthenticated is the starting state: no identity resolved yet.
	StateUnauthenticated SessionState = iota
	// StateValidAccess means the access token proved an identity.
	StateValidAccess
	// StateRefreshAttempted means access validation failed and the single
	// permitted refresh exchange has been made.
	StateRefreshAttempted
	// StateRejected means the request cannot be authenticated; both cookies
	// are untrustworthy and must be cleared.
	StateRejected
)

// SessionOutcome is the result of running the session state machine once.
type SessionOutcome struct {
	State SessionState
	User  *domain.User
	// Refreshed is the new session when the machine passed through
	// StateRefreshAttempted successfully; both cookies must be overwritten
	// with it. Nil when the original access token was still valid.
	Refreshed *domain.Session
	// RefreshFailed records that a refresh was attempted and failed, which
	// selects the "session expired" message over the generic one.
	RefreshFailed bool
}

// SessionService turns the token pair carried in cookies into a validated
// identity, refreshing at most once per request.
type SessionService struct {
	identity IdentityProvider
}

// NewSessionService creates a SessionService backed by the given identity
// provider.
func NewSessionService(identity IdentityProvider) *SessionService {
	return &SessionService{identity: identity}
}

// Login performs a password sign-in. Upstream credential rejections map to
// ErrInvalidCredentials; transport failures pass through unchanged.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	session, user, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		if supabase.IsCredentialError(err) {
			log.Debug().Str("email", email).Msg("login rejected by identity service")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if session == nil || session.AccessToken == "" {
		return nil, nil, ErrInvalidCredentials
	}
	return session, user, nil
}

// Resolve runs the session state machine:
//
//	Unauthenticated --valid access--> ValidAccess
//	Unauthenticated --invalid, refresh cookie present--> RefreshAttempted
//	RefreshAttempted --new access valid--> ValidAccess (Refreshed set)
//	otherwise--> Rejected
//
// Only credential-class upstream responses advance the machine; a transport
// failure aborts with an error, because nothing about the session can be
// concluded from an unreachable identity service.
func (s *SessionService) Resolve(ctx context.Context, accessToken, refreshToken string) (*SessionOutcome, error) {
	outcome := &SessionOutcome{State: StateUnauthenticated}

	if accessToken != "" {
		user, err := s.identity.UserFromToken(ctx, accessToken)
		if err == nil && user != nil {
			outcome.State = StateValidAccess
			outcome.User = user
			return outcome, nil
		}
		if err != nil && !supabase.IsCredentialError(err) {
			return nil, err
		}
	}

	// Access token missing or rejected. One refresh attempt, never more.
	if refreshToken == "" {
		outcome.State = StateRejected
		return outcome, nil
	}

	outcome.State = StateRefreshAttempted
	session, err := s.identity.RefreshSession(ctx, refreshToken)
	if err != nil || session == nil || session.AccessToken == "" {
		if err != nil && !supabase.IsCredentialError(err) {
			return nil, err
		}
		log.Debug().Msg("refresh token rejected by identity service")
		outcome.State = StateRejected
		outcome.RefreshFailed = true
		return outcome, nil
	}

	user, err := s.identity.UserFromToken(ctx, session.AccessToken)
	if err != nil || user == nil {
		if err != nil && !supabase.IsCredentialError(err) {
			return nil, err
		}
		outcome.State = StateRejected
		outcome.RefreshFailed = true
		return outcome, nil
	}

	outcome.State = StateValidAccess
	outcome.User = user
	outcome.Refreshed = session
	return outcome, nil
}
