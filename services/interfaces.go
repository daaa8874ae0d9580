// Package services contains the request-independent logic of the BFF: the
// session lifecycle state machine and the client/document flows. Upstream
// capabilities are consumed through the interfaces below; the supabase
// package provides the production implementation of all three.
package services

import (
	"context"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
)

// IdentityProvider is the upstream identity service: password sign-in,
// access-token introspection and refresh-token exchange.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, *domain.User, error)
	UserFromToken(ctx context.Context, accessToken string) (*domain.User, error)
	RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error)
}

// ClientDirectory is the upstream relational table holding client records.
type ClientDirectory interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// DocumentStore is the upstream object store holding per-client documents.
type DocumentStore interface {
	ListObjects(ctx context.Context, prefix string, limit int) ([]domain.Object, error)
	Upload(ctx context.Context, path, contentType string, data []byte) error
	CreateSignedURL(ctx context.Context, path string, expiresIn int) (string, error)
}
