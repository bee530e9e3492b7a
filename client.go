package sicar

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/carpublico/go-sicar/captcha"
)

var emailRe = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+@\w+\.\w{2,3}$`)

// Client is the top-level SICAR download client. It owns one portal session
// and one captcha solver; exchanges on the session are serialized, so a
// single Client can be shared across goroutines.
type Client struct {
	session *session
	solver  captcha.Solver
	cfg     ClientConfig

	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a fully-wired portal client and warms up its session
// cookies against the landing page. Precondition failures such as a
// malformed email surface here, never inside the download loop.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()

	if !emailRe.MatchString(cfg.Email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, cfg.Email)
	}

	c := &Client{
		session: newSession(cfg),
		solver:  cfg.Solver,
		cfg:     cfg,
		sleep:   sleepContext,
	}

	res, err := c.session.get(c.indexURL())
	if err != nil {
		return nil, fmt.Errorf("session warm-up: %w", err)
	}
	res.Close()

	slog.Debug("portal session ready", slog.String("base", cfg.BaseURL))
	return c, nil
}
