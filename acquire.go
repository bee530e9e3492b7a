package sicar

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
)

// fetchCaptcha pulls one fresh challenge image over the session. Challenges
// are single-use and bound to the session cookies; there is no retry here,
// the download loop owns attempt accounting.
func (c *Client) fetchCaptcha() (image.Image, error) {
	res, err := c.session.get(c.captchaURL())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptchaFetch, err)
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrCaptchaFetch, err)
	}

	img, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCaptchaFetch, err)
	}

	slog.Debug("challenge fetched", slog.String("format", kind), slog.Int("bytes", len(data)))
	return img, nil
}
