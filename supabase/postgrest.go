package supabase

import (
	"context"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
)

// ListClients reads every row of the clients table with the fixed column
// projection, newest first. An empty table yields an empty slice.
func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	ctx, span := c.startSpan(ctx, "supabase.rest.select",
		attribute.String("table", c.table))
	defer span.End()

	query := url.Values{}
	query.Set("select", domain.ClientColumns)
	query.Set("order", "created_at.desc")

	endpoint := c.baseURL + "/rest/v1/" + url.PathEscape(c.table) + "?" + query.Encode()
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return nil, err
	}

	var rows []domain.Client
	if err := c.doJSON(req, &rows); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if rows == nil {
		rows = []domain.Client{}
	}
	return rows, nil
}
