package captcha

import (
	"context"
	"image"
)

// Solver abstracts challenge image recognition, whether local OCR or a
// hosted service.
type Solver interface {
	// Solve returns its best guess for the characters in the challenge.
	// A wrong or empty guess is not an error; the error return is for
	// driver failures such as an unreachable OCR backend.
	Solve(ctx context.Context, img image.Image) (string, error)
}
