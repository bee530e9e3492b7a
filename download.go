package sicar

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"
)

// captchaLength is the number of characters in every portal challenge.
// Guesses of any other length are discarded without spending a request.
const captchaLength = 5

// DownloadRequest describes a single artifact retrieval.
type DownloadRequest struct {
	State     State
	City      string // IBGE municipality code; empty means state scope
	Format    OutputFormat
	Folder    string
	ChunkSize int
	Tries     int
}

// region names the requested slice of the registry for paths and logs.
func (r DownloadRequest) region() string {
	if r.City != "" {
		return r.City
	}
	return string(r.State)
}

// Result is the outcome of a download. Running out of attempts is an
// expected outcome, not an error: it yields a Result with no path.
type Result struct {
	// Path is the artifact location on disk, empty when the budget ran out.
	Path string
	// Attempts is how many captcha rounds were spent.
	Attempts int
}

// OK reports whether an artifact was actually retrieved.
func (r Result) OK() bool { return r.Path != "" }

// DownloadOption adjusts a single download call.
type DownloadOption func(*DownloadRequest)

// WithFormat selects the artifact kind. Default: Shapefile.
func WithFormat(f OutputFormat) DownloadOption {
	return func(r *DownloadRequest) { r.Format = f }
}

// WithFolder overrides the destination directory.
func WithFolder(dir string) DownloadOption {
	return func(r *DownloadRequest) { r.Folder = dir }
}

// WithTries overrides the attempt budget.
func WithTries(n int) DownloadOption {
	return func(r *DownloadRequest) { r.Tries = n }
}

// WithChunkSize overrides the streaming buffer size.
func WithChunkSize(n int) DownloadOption {
	return func(r *DownloadRequest) { r.ChunkSize = n }
}

// DownloadState retrieves the property base of a whole state.
func (c *Client) DownloadState(ctx context.Context, state State, opts ...DownloadOption) (Result, error) {
	if !state.valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownState, string(state))
	}
	req := c.newRequest(opts)
	req.State = state
	return c.download(ctx, req)
}

// DownloadCity retrieves the property base of one municipality.
func (c *Client) DownloadCity(ctx context.Context, city string, opts ...DownloadOption) (Result, error) {
	if !cityCodeRe.MatchString(city) {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidCityCode, city)
	}
	req := c.newRequest(opts)
	req.City = city
	return c.download(ctx, req)
}

// DownloadStates retrieves several states sequentially. Exhausted entries
// do not abort the batch; the returned map holds one Result per state. The
// error is non-nil only for precondition failures or context cancellation.
func (c *Client) DownloadStates(ctx context.Context, states []State, opts ...DownloadOption) (map[State]Result, error) {
	out := make(map[State]Result, len(states))
	for _, st := range states {
		res, err := c.DownloadState(ctx, st, opts...)
		if err != nil {
			return out, err
		}
		out[st] = res
	}
	return out, nil
}

// DownloadCities retrieves several municipalities sequentially, with the
// same continuation semantics as DownloadStates.
func (c *Client) DownloadCities(ctx context.Context, cities []string, opts ...DownloadOption) (map[string]Result, error) {
	out := make(map[string]Result, len(cities))
	for _, city := range cities {
		res, err := c.DownloadCity(ctx, city, opts...)
		if err != nil {
			return out, err
		}
		out[city] = res
	}
	return out, nil
}

// DownloadCountry retrieves every federative unit.
func (c *Client) DownloadCountry(ctx context.Context, opts ...DownloadOption) (map[State]Result, error) {
	return c.DownloadStates(ctx, States(), opts...)
}

// newRequest seeds a request from client-level defaults.
func (c *Client) newRequest(opts []DownloadOption) DownloadRequest {
	req := DownloadRequest{
		Format:    Shapefile,
		Folder:    c.cfg.Folder,
		ChunkSize: c.cfg.ChunkSize,
		Tries:     c.cfg.Tries,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// download runs the captcha loop until an artifact lands or the attempt
// budget runs out. Past the preconditions every failure is absorbed and
// retried with a fresh challenge.
func (c *Client) download(ctx context.Context, req DownloadRequest) (Result, error) {
	if !req.Format.valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(req.Format))
	}
	if req.ChunkSize <= 0 {
		req.ChunkSize = defaultChunkSize
	}
	if err := os.MkdirAll(req.Folder, 0o755); err != nil {
		return Result{}, fmt.Errorf("folder %s: %w", req.Folder, err)
	}

	var res Result
	for attempt := range req.Tries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if attempt > 0 {
			if err := c.sleep(ctx, retryDelay()); err != nil {
				return res, err
			}
		}
		res.Attempts = attempt + 1

		img, err := c.fetchCaptcha()
		if err != nil {
			slog.Warn("challenge fetch failed", slog.String("region", req.region()), slog.Int("attempt", res.Attempts), slog.Any("error", err))
			continue
		}

		guess, err := c.solver.Solve(ctx, img)
		if err != nil {
			slog.Warn("solver failed", slog.String("region", req.region()), slog.Int("attempt", res.Attempts), slog.Any("error", err))
			continue
		}
		if len(guess) != captchaLength {
			slog.Debug("discarding malformed guess", slog.String("guess", guess), slog.Int("attempt", res.Attempts))
			continue
		}

		slog.Debug("submitting challenge", slog.String("region", req.region()), slog.String("captcha", guess), slog.Int("attempt", res.Attempts))

		path, err := c.fetchResource(req, guess)
		if err != nil {
			slog.Warn("download refused", slog.String("region", req.region()), slog.Int("attempt", res.Attempts), slog.Any("error", err))
			continue
		}

		res.Path = path
		slog.Info("artifact downloaded", slog.String("region", req.region()), slog.String("path", path), slog.Int("attempts", res.Attempts))
		return res, nil
	}

	slog.Info("attempt budget exhausted", slog.String("region", req.region()), slog.Int("attempts", res.Attempts))
	return res, nil
}

// retryDelay is the pause between captcha rounds: two uniform draws summed,
// so the cadence stays irregular and under two seconds.
func retryDelay() time.Duration {
	d := time.Duration((rand.Float64() + rand.Float64()) * float64(time.Second))
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
