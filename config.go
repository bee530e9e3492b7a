package sicar

import (
	"time"

	"github.com/carpublico/go-sicar/captcha"
)

const (
	defaultEmail     = "sicar@sicar.com"
	defaultFolder    = "temp"
	defaultTries     = 25
	defaultChunkSize = 1024
)

// ClientConfig holds all configuration for the SICAR client.
type ClientConfig struct {
	// Solver recognizes challenge images. Default: local Tesseract.
	Solver captcha.Solver

	// Email identifies the requester on municipality downloads.
	// Default: sicar@sicar.com
	Email string

	// BaseURL is the portal root. Override for mirrors and tests.
	BaseURL string

	// Headers replaces the built-in browser header set entirely when set.
	Headers map[string]string

	// Proxy is an optional forward proxy URL for all portal traffic.
	Proxy string

	// Timeout caps a single portal exchange including body transfer.
	// Zero means no cap, which large state bases need.
	Timeout time.Duration

	// VerifyTLS turns certificate verification back on. The portal serves
	// an incomplete chain, so verification is off unless asked for.
	VerifyTLS bool

	// Tries is the default attempt budget for each download.
	Tries int

	// ChunkSize is the streaming copy buffer size in bytes.
	ChunkSize int

	// Folder is the default destination directory for artifacts.
	Folder string

	// Progress receives transfer updates while an artifact streams to disk:
	// bytes written so far and the declared total.
	Progress func(written, total int64)
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.Solver == nil {
		cfg.Solver = captcha.NewTesseract()
	}
	if cfg.Email == "" {
		cfg.Email = defaultEmail
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Tries == 0 {
		cfg.Tries = defaultTries
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.Folder == "" {
		cfg.Folder = defaultFolder
	}
}
