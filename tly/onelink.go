package tly

import (
	"context"
	"net/http"
	"strconv"
)

// OneLinkStats fetches click statistics for a OneLink.
func (c *Client) OneLinkStats(ctx context.Context, shortURL string, opts *StatsOptions) (Result, error) {
	params := Params{}
	params.Set("short_url", shortURL)
	if opts != nil {
		setTimestampParam(&params, "start_date", opts.StartDate)
		setTimestampParam(&params, "end_date", opts.EndDate)
	}
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/onelink/stats", params: params})
}

// DeleteOneLinkStats clears the recorded statistics for a OneLink. Note the
// singular /stat path; the read side uses /stats.
func (c *Client) DeleteOneLinkStats(ctx context.Context, shortURL string) (Result, error) {
	body := map[string]any{"short_url": shortURL}
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: "/api/v1/onelink/stat", body: body})
}

// ListOneLinks lists OneLinks, one page at a time. Page numbers start at 1;
// zero or negative leaves the page parameter off so the server default
// applies.
func (c *Client) ListOneLinks(ctx context.Context, page int) (Result, error) {
	params := Params{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	return c.do(ctx, apiRequest{method: http.MethodGet, path: "/api/v1/onelink/list", params: params})
}
