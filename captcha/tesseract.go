package captcha

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"regexp"

	"github.com/otiai10/gosseract/v2"
)

const (
	// charWhitelist restricts recognition to the alphabet the portal uses.
	charWhitelist = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// pageSegSingleLine treats the whole image as one text line.
	pageSegSingleLine = "7"
)

var nonAlnumRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Tesseract recognizes challenges with a local Tesseract install. It needs
// the tesseract C library and the eng traineddata present on the host.
type Tesseract struct{}

// NewTesseract returns the default local OCR driver.
func NewTesseract() *Tesseract {
	return &Tesseract{}
}

// Solve preprocesses the challenge and runs a single-line recognition pass
// restricted to alphanumerics.
func (t *Tesseract) Solve(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, preprocess(img)); err != nil {
		return "", fmt.Errorf("encode challenge: %w", err)
	}

	cli := gosseract.NewClient()
	defer cli.Close()

	if err := cli.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("tesseract image: %w", err)
	}
	if err := cli.SetVariable(gosseract.SettableVariable("tessedit_char_whitelist"), charWhitelist); err != nil {
		return "", fmt.Errorf("tesseract whitelist: %w", err)
	}
	if err := cli.SetVariable(gosseract.SettableVariable("tessedit_pageseg_mode"), pageSegSingleLine); err != nil {
		return "", fmt.Errorf("tesseract psm: %w", err)
	}

	text, err := cli.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return clean(text), nil
}

// clean strips whitespace and stray punctuation from a recognition result.
func clean(s string) string {
	return nonAlnumRe.ReplaceAllString(s, "")
}
