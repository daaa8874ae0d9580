package supabase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
)

// ListObjects lists blobs directly under prefix, newest first, capped at
// limit entries. A missing prefix is an upstream 404, which the caller is
// expected to translate into an empty listing via IsNotFound.
func (c *Client) ListObjects(ctx context.Context, prefix string, limit int) ([]domain.Object, error) {
	ctx, span := c.startSpan(ctx, "supabase.storage.list",
		attribute.String("bucket", c.bucket),
		attribute.String("prefix", prefix))
	defer span.End()

	payload := map[string]any{
		"prefix": prefix,
		"limit":  limit,
		"offset": 0,
		"sortBy": map[string]string{"column": "created_at", "order": "desc"},
	}
	endpoint := c.baseURL + "/storage/v1/object/list/" + url.PathEscape(c.bucket)

	var objects []domain.Object
	if err := c.postJSON(ctx, endpoint, payload, &objects, ""); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return objects, nil
}

// Upload stores data at path within the bucket. Overwriting is disabled, so
// a second upload to the same path fails with an upstream conflict.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) error {
	ctx, span := c.startSpan(ctx, "supabase.storage.upload",
		attribute.String("bucket", c.bucket),
		attribute.Int("size", len(data)))
	defer span.End()

	endpoint := c.baseURL + "/storage/v1/object/" + url.PathEscape(c.bucket) + "/" + escapeObjectPath(path)
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(data), "")
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	req.Header.Set("x-upsert", "false")

	if err := c.doJSON(req, nil); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// CreateSignedURL mints a time-limited download link for the blob at path.
// The returned URL is absolute.
func (c *Client) CreateSignedURL(ctx context.Context, path string, expiresIn int) (string, error) {
	ctx, span := c.startSpan(ctx, "supabase.storage.sign",
		attribute.String("bucket", c.bucket),
		attribute.Int("expires_in", expiresIn))
	defer span.End()

	payload := map[string]int{"expiresIn": expiresIn}
	endpoint := c.baseURL + "/storage/v1/object/sign/" + url.PathEscape(c.bucket) + "/" + escapeObjectPath(path)

	var resp struct {
		SignedURL string `json:"signedURL"`
	}
	if err := c.postJSON(ctx, endpoint, payload, &resp, ""); err != nil {
		span.RecordError(err)
		return "", err
	}
	if resp.SignedURL == "" {
		return "", fmt.Errorf("sign %s: upstream returned no URL", path)
	}
	return c.baseURL + "/storage/v1" + resp.SignedURL, nil
}

// escapeObjectPath escapes each path segment while keeping the separators,
// since object keys like "<clientId>/<name>" are addressed as URL paths.
func escapeObjectPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
