package handlers

import (
	"encoding/json"
	"net/http"

	wellplayer "github.com/tahsin2627/wellplayer-scraper-backend/pkg"
	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/models"
)

const (
	missingQueryError = "Missing query parameter"
	fetchError        = "Error fetching data"
)

// Search relays a movie search to the upstream metadata API. The upstream
// document is returned verbatim; callers only ever see the two generic error
// bodies, never the underlying cause.
func Search(cfg *wellplayer.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "" {
			writeError(w, http.StatusBadRequest, missingQueryError)
			return
		}

		document, err := cfg.Search.SearchMovies(r.Context(), query)
		if err != nil {
			cfg.Logger.Errorf("Unable to fetch data from TMDB: %s", err)
			writeError(w, http.StatusInternalServerError, fetchError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(document)
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
