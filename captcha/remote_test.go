package captcha

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteSolve(t *testing.T) {
	images := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer k3y", r.Header.Get("Authorization"))
		var got remoteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		images <- got.Image
		json.NewEncoder(w).Encode(remoteResponse{Text: " a1 B2c!\n", Confidence: 0.91})
	}))
	defer ts.Close()

	r := NewRemote(ts.URL, "k3y")
	text, err := r.Solve(context.Background(), image.NewGray(image.Rect(0, 0, 10, 10)))
	require.NoError(t, err)
	assert.Equal(t, "a1B2c", text)

	encoded := <-images
	require.NotEmpty(t, encoded)
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(raw[:4]), "challenge must travel as PNG")
}

func TestRemoteSolveNoAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(remoteResponse{Text: "7G3K9"})
	}))
	defer ts.Close()

	r := NewRemote(ts.URL, "")
	text, err := r.Solve(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err)
	assert.Equal(t, "7G3K9", text)
}

func TestRemoteSolveEmptyText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remoteResponse{Text: "", Confidence: 0.1})
	}))
	defer ts.Close()

	r := NewRemote(ts.URL, "")
	text, err := r.Solve(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err, "an unreadable challenge is a guess, not a failure")
	assert.Empty(t, text)
}

func TestRemoteSolveHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer ts.Close()

	r := NewRemote(ts.URL, "")
	_, err := r.Solve(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestRemoteSolveBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>proxy error</html>"))
	}))
	defer ts.Close()

	r := NewRemote(ts.URL, "")
	_, err := r.Solve(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)))
	require.Error(t, err)
}

func TestRemoteSolveContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRemote(ts.URL, "")
	_, err := r.Solve(ctx, image.NewGray(image.Rect(0, 0, 4, 4)))
	require.Error(t, err)
}
