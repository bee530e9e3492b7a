package sicar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// fetchResource submits a solved captcha on the download endpoint and
// streams the artifact to disk, returning its path. The portal answers
// rejected captchas with HTTP 200 and a human-readable HTML page, so a
// success status alone proves nothing: the declared length and payload type
// are checked before any byte lands on disk.
func (c *Client) fetchResource(req DownloadRequest, captcha string) (string, error) {
	u := c.downloadURL(req, captcha)

	res, err := c.session.get(u)
	if err != nil {
		return "", &FetchError{URL: u, Reason: FetchTransport, Err: err}
	}
	defer res.Close()

	length, _ := strconv.ParseInt(res.Header.Get("Content-Length"), 10, 64)
	if length <= 0 {
		return "", &FetchError{URL: u, Reason: FetchEmptyBody}
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, req.Format.contentType()) {
		return "", &FetchError{URL: u, Reason: FetchWrongType, Err: fmt.Errorf("got %q", ct)}
	}

	path := filepath.Join(req.Folder, req.Format.artifactName(req.region()))
	fd, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer fd.Close()

	w := &progressWriter{w: fd, total: length, report: c.cfg.Progress}
	if _, err := io.CopyBuffer(w, res, make([]byte, req.ChunkSize)); err != nil {
		return "", fmt.Errorf("stream %s: %w", path, err)
	}
	return path, nil
}

// progressWriter forwards incremental transfer counts to the configured
// callback.
type progressWriter struct {
	w       io.Writer
	written int64
	total   int64
	report  func(written, total int64)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	if p.report != nil && n > 0 {
		p.report(p.written, p.total)
	}
	return n, err
}
