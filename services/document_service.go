package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
	"github.com/Neon18H/APP-WEB-FILPP/supabase"
)

// listLimit caps how many documents a single listing returns.
const listLimit = 100

var whitespaceRe = regexp.MustCompile(`\s+`)

// DocumentService lists and uploads per-client documents, minting a
// time-limited signed URL for each one.
type DocumentService struct {
	store    DocumentStore
	ttl      int // signed-URL lifetime in seconds
	urlCache *signedURLCache
	now      func() time.Time
}

// NewDocumentService creates a DocumentService. signedURLTTL is the validity
// window, in seconds, of every minted URL.
func NewDocumentService(store DocumentStore, signedURLTTL int) *DocumentService {
	return &DocumentService{
		store:    store,
		ttl:      signedURLTTL,
		urlCache: newSignedURLCache(time.Duration(signedURLTTL) * time.Second),
		now:      time.Now,
	}
}

// List returns the documents stored under "<clientID>/", newest first,
// capped at 100 entries. Signed URLs are minted concurrently; a single
// failed mint leaves that entry's SignedURL nil without failing the listing.
// A prefix the store has never seen yields an empty list.
func (s *DocumentService) List(ctx context.Context, clientID string) ([]domain.Document, error) {
	objects, err := s.store.ListObjects(ctx, clientID, listLimit)
	if err != nil {
		if supabase.IsNotFound(err) {
			return []domain.Document{}, nil
		}
		log.Error().Err(err).Str("client_id", clientID).Msg("listing documents failed")
		return nil, err
	}

	documents := make([]domain.Document, len(objects))

	group, ctx := errgroup.WithContext(ctx)
	for i, object := range objects {
		i, object := i, object
		group.Go(func() error {
			path := clientID + "/" + object.Name
			documents[i] = domain.Document{Name: object.Name}
			url, err := s.signURL(ctx, path)
			if err != nil {
				// Per-item failure: the entry stays URL-less, the rest of
				// the listing is unaffected.
				log.Warn().Err(err).Str("path", path).Msg("signed URL mint failed")
				return nil
			}
			documents[i].SignedURL = &url
			return nil
		})
	}
	group.Wait()

	return documents, nil
}

// Upload stores data under "<clientID>/<unix-millis>_<sanitized name>" and
// returns the stored document with its signed URL. Overwrites are refused by
// the store, so a timestamp collision on the synthesized name fails the
// upload. ErrUploadedNoURL distinguishes a stored-but-unsigned document from
// an outright upload failure.
func (s *DocumentService) Upload(ctx context.Context, clientID, filename, contentType string, data []byte) (*domain.Document, error) {
	name := fmt.Sprintf("%d_%s", s.now().UnixMilli(), whitespaceRe.ReplaceAllString(filename, "_"))
	path := clientID + "/" + name

	if err := s.store.Upload(ctx, path, contentType, data); err != nil {
		log.Error().Err(err).Str("path", path).Msg("document upload failed")
		return nil, err
	}

	url, err := s.signURL(ctx, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("document stored but signing failed")
		return nil, ErrUploadedNoURL
	}

	return &domain.Document{Name: name, SignedURL: &url}, nil
}

// signURL mints a signed URL for path, reusing a cached one while it still
// has at least half its validity window left.
func (s *DocumentService) signURL(ctx context.Context, path string) (string, error) {
	if url, ok := s.urlCache.get(path); ok {
		return url, nil
	}
	url, err := s.store.CreateSignedURL(ctx, path, s.ttl)
	if err != nil {
		return "", err
	}
	s.urlCache.set(path, url)
	return url, nil
}
