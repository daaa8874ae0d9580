package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
	"github.com/Neon18H/APP-WEB-FILPP/supabase"
)

// fakeDocumentStore is a hand-rolled DocumentStore with per-call hooks and a
// concurrency-safe sign-call counter.
type fakeDocumentStore struct {
	listFunc   func(prefix string, limit int) ([]domain.Object, error)
	uploadFunc func(path, contentType string, data []byte) error
	signFunc   func(path string, expiresIn int) (string, error)

	mu        sync.Mutex
	signCalls int
}

func (f *fakeDocumentStore) ListObjects(_ context.Context, prefix string, limit int) ([]domain.Object, error) {
	return f.listFunc(prefix, limit)
}

func (f *fakeDocumentStore) Upload(_ context.Context, path, contentType string, data []byte) error {
	return f.uploadFunc(path, contentType, data)
}

func (f *fakeDocumentStore) CreateSignedURL(_ context.Context, path string, expiresIn int) (string, error) {
	f.mu.Lock()
	f.signCalls++
	f.mu.Unlock()
	return f.signFunc(path, expiresIn)
}

func TestList_EmptyPrefix(t *testing.T) {
	store := &fakeDocumentStore{
		listFunc: func(string, int) ([]domain.Object, error) { return []domain.Object{}, nil },
	}

	documents, err := NewDocumentService(store, 3540).List(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, documents)
	assert.NotNil(t, documents)
}

func TestList_UnknownPrefixIsEmptyNotError(t *testing.T) {
	store := &fakeDocumentStore{
		listFunc: func(string, int) ([]domain.Object, error) {
			return nil, &supabase.APIError{Status: http.StatusNotFound, Message: "not found"}
		},
	}

	documents, err := NewDocumentService(store, 3540).List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, documents)
}

func TestList_SignsConcurrentlyPreservingOrder(t *testing.T) {
	store := &fakeDocumentStore{
		listFunc: func(prefix string, limit int) ([]domain.Object, error) {
			assert.Equal(t, "c1", prefix)
			assert.Equal(t, 100, limit)
			return []domain.Object{{Name: "third.pdf"}, {Name: "second.pdf"}, {Name: "first.pdf"}}, nil
		},
		signFunc: func(path string, expiresIn int) (string, error) {
			assert.Equal(t, 3540, expiresIn)
			return "https://signed/" + path, nil
		},
	}

	documents, err := NewDocumentService(store, 3540).List(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, documents, 3)

	assert.Equal(t, "third.pdf", documents[0].Name)
	assert.Equal(t, "second.pdf", documents[1].Name)
	assert.Equal(t, "first.pdf", documents[2].Name)
	require.NotNil(t, documents[0].SignedURL)
	assert.Equal(t, "https://signed/c1/third.pdf", *documents[0].SignedURL)
}

func TestList_OneFailedSignDoesNotFailTheBatch(t *testing.T) {
	store := &fakeDocumentStore{
		listFunc: func(string, int) ([]domain.Object, error) {
			return []domain.Object{{Name: "a.pdf"}, {Name: "b.pdf"}, {Name: "c.pdf"}}, nil
		},
		signFunc: func(path string, _ int) (string, error) {
			if path == "c1/b.pdf" {
				return "", &supabase.APIError{Status: http.StatusInternalServerError, Message: "boom"}
			}
			return "https://signed/" + path, nil
		},
	}

	documents, err := NewDocumentService(store, 3540).List(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, documents, 3)

	assert.NotNil(t, documents[0].SignedURL)
	assert.Nil(t, documents[1].SignedURL)
	assert.NotNil(t, documents[2].SignedURL)
}

func TestList_CachedURLSkipsSecondMint(t *testing.T) {
	store := &fakeDocumentStore{
		listFunc: func(string, int) ([]domain.Object, error) {
			return []domain.Object{{Name: "a.pdf"}}, nil
		},
		signFunc: func(path string, _ int) (string, error) {
			return "https://signed/" + path, nil
		},
	}
	svc := NewDocumentService(store, 3540)

	_, err := svc.List(context.Background(), "c1")
	require.NoError(t, err)
	_, err = svc.List(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, store.signCalls)
}

func TestUpload_SynthesizesCollisionFreeName(t *testing.T) {
	var gotPath, gotContentType string
	store := &fakeDocumentStore{
		uploadFunc: func(path, contentType string, data []byte) error {
			gotPath, gotContentType = path, contentType
			assert.Equal(t, []byte("pdf-bytes"), data)
			return nil
		},
		signFunc: func(path string, _ int) (string, error) { return "https://signed/" + path, nil },
	}

	svc := NewDocumentService(store, 3540)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	document, err := svc.Upload(context.Background(), "c1", "tax  return 2025.pdf", "application/pdf", []byte("pdf-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "1700000000000_tax_return_2025.pdf", document.Name)
	assert.Equal(t, "c1/1700000000000_tax_return_2025.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotContentType)
	require.NotNil(t, document.SignedURL)
	assert.Equal(t, "https://signed/c1/1700000000000_tax_return_2025.pdf", *document.SignedURL)
}

func TestUpload_StoreFailure(t *testing.T) {
	store := &fakeDocumentStore{
		uploadFunc: func(string, string, []byte) error {
			return &supabase.APIError{Status: http.StatusConflict, Message: "already exists"}
		},
	}

	_, err := NewDocumentService(store, 3540).Upload(context.Background(), "c1", "a.pdf", "", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUploadedNoURL)
}

func TestUpload_SignedURLFailureIsDistinct(t *testing.T) {
	store := &fakeDocumentStore{
		uploadFunc: func(string, string, []byte) error { return nil },
		signFunc: func(string, int) (string, error) {
			return "", &supabase.APIError{Status: http.StatusInternalServerError, Message: "boom"}
		},
	}

	_, err := NewDocumentService(store, 3540).Upload(context.Background(), "c1", "a.pdf", "", nil)
	assert.ErrorIs(t, err, ErrUploadedNoURL)
}
