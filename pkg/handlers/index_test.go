package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", &bytes.Buffer{})

	Index().ServeHTTP(w, r)

	actual := w.Result()
	defer func() { _ = actual.Body.Close() }()

	_, _ = io.Copy(&body, actual.Body)

	assert.Equal(t, 200, actual.StatusCode)
	assert.Contains(t, body.String(), "WellPlayer Scraper Backend is running!")
}
