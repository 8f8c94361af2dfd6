package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		method      string
		given       http.HandlerFunc
		code        int
		body        string
	}{
		{
			"headers attached to a success response",
			http.MethodGet,
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results":[]}`))
			}),
			200,
			`{"results":[]}`,
		},
		{
			"headers attached to an error response",
			http.MethodGet,
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "An internal error has occurred", http.StatusInternalServerError)
			}),
			500,
			`An internal error has occurred`,
		},
		{
			"preflight request answered directly",
			http.MethodOptions,
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not be called for preflight requests")
			}),
			204,
			``,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var body bytes.Buffer

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "/", &bytes.Buffer{})

			CORS()(tc.given).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Equal(t, "*", actual.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, OPTIONS", actual.Header.Get("Access-Control-Allow-Methods"))
			assert.Contains(t, body.String(), tc.body)
		})
	}
}
