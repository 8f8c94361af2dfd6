package tmdb

import "os"

const (
	// DefaultAPIKey is the baked-in upstream credential used when
	// TMDB_API_KEY is not set. Deployments are expected to override it.
	DefaultAPIKey = "8c02b0f69e7f4a23b8dd1e3c5a9f7d14"

	DefaultBaseURL = "https://api.themoviedb.org/3"
)

type Env struct {
	APIKey  string
	BaseURL string

	// DefaultKey reports whether the fallback credential is in use.
	DefaultKey bool
}

func NewTMDBEnv() *Env {
	return &Env{}
}

func (t *Env) Populate() error {
	key := os.Getenv("TMDB_API_KEY")
	if key == "" {
		key = DefaultAPIKey
		t.DefaultKey = true
	}
	t.APIKey = key

	base := os.Getenv("TMDB_API_BASE")
	if base == "" {
		base = DefaultBaseURL
	}
	t.BaseURL = base

	return nil
}
