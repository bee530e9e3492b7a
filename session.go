package sicar

import (
	"crypto/tls"
	"fmt"
	"sync"

	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/cookies"
	"gopkg.in/h2non/gentleman.v2/plugins/headers"
	"gopkg.in/h2non/gentleman.v2/plugins/proxy"
	gtls "gopkg.in/h2non/gentleman.v2/plugins/tls"
)

// session is the cookie-bearing conduit to the portal. The portal only
// honors download requests on the session that saw the landing page, so
// every exchange rides the same cookie jar.
type session struct {
	cli *gentleman.Client

	// mu serializes exchanges. The jar mutates on every response and the
	// portal binds each challenge to the session state that fetched it.
	mu sync.Mutex
}

func newSession(cfg ClientConfig) *session {
	cli := gentleman.New()
	cli.Use(cookies.Jar())

	if !cfg.VerifyTLS {
		cli.Use(gtls.Config(&tls.Config{InsecureSkipVerify: true}))
	}
	if cfg.Proxy != "" {
		cli.Use(proxy.Set(map[string]string{"http": cfg.Proxy, "https": cfg.Proxy}))
	}
	if cfg.Timeout > 0 {
		cli.Context.Client.Timeout = cfg.Timeout
	}

	hdrs := cfg.Headers
	if hdrs == nil {
		hdrs = browserHeaders()
	}
	for k, v := range hdrs {
		cli.Use(headers.Set(k, v))
	}

	return &session{cli: cli}
}

// get performs one exchange and hands back the open response. The caller
// owns closing it. Non-2xx statuses close the body and surface as a
// StatusError.
func (s *session) get(rawURL string) (*gentleman.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.cli.Request().URL(rawURL).Send()
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	if !res.Ok {
		res.Close()
		return nil, &StatusError{URL: rawURL, StatusCode: res.StatusCode}
	}
	return res, nil
}
