// Package catalog implements the best-effort remote catalog provider.
// It queries the NASA Exoplanet Archive for nearby exoplanets and maps them
// to bookable destinations. Every failure mode is absorbed: the booking flow
// only ever sees whatever catalog is currently available.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/soham999a/spaceship/internal/domain"
)

// DefaultBaseURL is the NASA Exoplanet Archive TAP sync endpoint.
const DefaultBaseURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"

// tapQuery selects nearby confirmed exoplanets with a known distance.
// %d is the row limit.
const tapQuery = "SELECT TOP %d pl_name,sy_dist,pl_rade,pl_masse,pl_orbper,pl_eqt,disc_year " +
	"FROM ps WHERE pl_name IS NOT NULL AND sy_dist IS NOT NULL AND sy_dist < 100 ORDER BY sy_dist ASC"

// maxAttempts bounds the fetch chain; after that callers fall back to the
// static catalog.
const maxAttempts = 3

// Client fetches exoplanet rows from the NASA Exoplanet Archive.
type Client struct {
	baseURL string
	limit   int
	http    *http.Client
}

// NewClient constructs a Client against the given TAP endpoint.
// Pass DefaultBaseURL in production; tests point it at a local server.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		limit:   50,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// tapRow is one record of the TAP JSON response.
type tapRow struct {
	Name     string   `json:"pl_name"`
	Distance float64  `json:"sy_dist"`
	EqTempK  *float64 `json:"pl_eqt"`
	DiscYear *int     `json:"disc_year"`
}

// Fetch retrieves exoplanets and maps them to destinations. It retries up to
// maxAttempts with fibonacci backoff before giving up. Rows without a usable
// name or distance are skipped.
func (c *Client) Fetch(ctx context.Context) ([]domain.Destination, error) {
	var rows []tapRow

	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewFibonacci(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, err := c.fetchOnce(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		rows = fetched
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.Client.Fetch: %w", err)
	}

	dests := make([]domain.Destination, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.Distance <= 0 {
			continue
		}
		dests = append(dests, rowToDestination(row))
	}
	return dests, nil
}

// fetchOnce issues a single TAP request.
func (c *Client) fetchOnce(ctx context.Context) ([]tapRow, error) {
	form := url.Values{
		"query":  {fmt.Sprintf(tapQuery, c.limit)},
		"format": {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var rows []tapRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return rows, nil
}

// rowToDestination maps a TAP row to a bookable destination. Pricing follows
// the portal's exoplanet formula: 15000 credits plus 500 per light year.
func rowToDestination(row tapRow) domain.Destination {
	d := domain.Destination{
		ID:          "exo-" + slugify(row.Name),
		Name:        row.Name,
		Description: fmt.Sprintf("Confirmed exoplanet %.1f light years from Earth.", row.Distance),
		Distance:    row.Distance,
		BaseCost:    15000 + int(math.Round(row.Distance*500)),
		Tags:        rowTags(row),
		Activities:  []string{"Orbital Survey", "Spectrometry Workshop", "Deep Space Photography"},
		Metadata:    map[string]string{"population": "Uninhabited"},
	}
	if row.EqTempK != nil {
		d.Metadata["temperature"] = fmt.Sprintf("%d°C", int(math.Round(*row.EqTempK-273.15)))
	}
	if row.DiscYear != nil {
		d.Metadata["discovery_year"] = fmt.Sprintf("%d", *row.DiscYear)
	}
	return d
}

// rowTags derives catalog tags from the equilibrium temperature.
// Every exoplanet is tagged Scientific; temperature extremes add the packing
// tags the booking core understands.
func rowTags(row tapRow) []string {
	tags := []string{"Scientific"}
	if row.EqTempK == nil {
		return tags
	}
	switch {
	case *row.EqTempK < 200:
		tags = append(tags, "Cold")
	case *row.EqTempK > 350:
		tags = append(tags, "Hot")
	}
	return tags
}

// slugify lowercases a planet name and replaces runs of non-alphanumerics
// with single hyphens, e.g. "Proxima Cen b" → "proxima-cen-b".
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Merger is the slice of the catalog repo the refresher needs.
type Merger interface {
	MergeRemote(ctx context.Context, fetched []domain.Destination) error
}

// Refresh fetches the remote catalog once and merges the result.
// Failures are logged and absorbed — the static catalog remains in service.
// Run it in a goroutine from main; it has no cancellation semantics of its
// own beyond the passed context.
func Refresh(ctx context.Context, client *Client, merger Merger, log *slog.Logger) {
	dests, err := client.Fetch(ctx)
	if err != nil {
		log.Warn("remote catalog unavailable, serving static catalog only", "error", err)
		return
	}
	if err := merger.MergeRemote(ctx, dests); err != nil {
		log.Warn("failed to merge remote catalog", "error", err)
		return
	}
	log.Info("remote catalog loaded", "destinations", len(dests))
}
