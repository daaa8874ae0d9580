// Package supabase implements the REST client for the upstream
// backend-as-a-service platform: password sign-in, token introspection and
// refresh against the auth endpoint, row reads against the table endpoint,
// and object listing/upload/signing against the storage endpoint.
//
// The client is stateless and safe for concurrent use; one instance is
// constructed at startup and shared by every request.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Neon18H/APP-WEB-FILPP/supabase"

// Client talks to a single Supabase project using its service-role key.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	table      string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a Client for the project at baseURL. The bucket and table
// identify the storage bucket and clients table every call operates on.
func New(baseURL, serviceKey, bucket, table string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		table:      table,
		httpClient: http.DefaultClient,
		tracer:     otel.Tracer(tracerName),
	}
}

// newRequest builds a request with the project API key attached. When
// bearer is empty the service-role key doubles as the bearer credential,
// which is how table and storage calls are authorized.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader, bearer string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, url, err)
	}
	req.Header.Set("apikey", c.serviceKey)
	if bearer == "" {
		bearer = c.serviceKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	return req, nil
}

// doJSON executes req, decodes a 2xx response into out (when non-nil) and
// converts any other status into an *APIError.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, out any, bearer string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, url, bytes.NewReader(body), bearer)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

func (c *Client) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
