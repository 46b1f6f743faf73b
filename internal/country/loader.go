package country

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/countrylist/internal/logging"
)

// DefaultEndpoint requests only the three fields a Record needs.
const DefaultEndpoint = "https://restcountries.com/v2/all?fields=name,region,area"

// DefaultTimeout bounds a single load.
const DefaultTimeout = 15 * time.Second

// maxBodyBytes caps the response body; the full dataset is well under this.
const maxBodyBytes = 8 << 20

// ErrLoadFailure is returned for every failed load: transport errors,
// non-success statuses, and malformed payloads alike.
var ErrLoadFailure = errors.New("failed to load countries")

// Loader fetches the record set from a fixed endpoint.
type Loader struct {
	Endpoint   string
	HTTPClient *http.Client
}

// NewLoader creates a Loader. Empty endpoint and non-positive timeout fall
// back to the defaults.
func NewLoader(endpoint string, timeout time.Duration) *Loader {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Load performs exactly one GET and decodes the response. Records are
// returned in the order received. Any failure wraps ErrLoadFailure.
func (l *Loader) Load(ctx context.Context) ([]Record, error) {
	log := logging.FromContext(ctx).With().Str("component", "loader").Logger()
	start := time.Now()

	records, err := l.fetch(ctx)
	if err != nil {
		log.Error().Ctx(ctx).
			Err(err).
			Str("endpoint", l.Endpoint).
			Dur("duration", time.Since(start)).
			Msg("country load failed")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	log.Info().Ctx(ctx).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("countries loaded")
	return records, nil
}

func (l *Loader) fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", l.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return Decode(io.LimitReader(resp.Body, maxBodyBytes))
}

// Decode parses a JSON array of records and validates every element.
func Decode(r io.Reader) ([]Record, error) {
	var raw []rawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if raw == nil {
		return nil, errors.New("decoding payload: expected a JSON array")
	}

	records := make([]Record, 0, len(raw))
	for i, rr := range raw {
		rec, err := rr.toRecord(i)
		if err != nil {
			return nil, fmt.Errorf("decoding payload: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
