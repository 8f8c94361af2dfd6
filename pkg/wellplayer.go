package wellplayer

import (
	serverenv "github.com/tahsin2627/wellplayer-scraper-backend/pkg/env/server"
	tmdbenv "github.com/tahsin2627/wellplayer-scraper-backend/pkg/env/tmdb"
	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/tmdb"
	"go.uber.org/zap"
)

// Config carries the dependencies shared by handlers and middleware. It is
// built once at startup and injected, so tests can substitute fixed values.
type Config struct {
	Search    tmdb.SearchProvider
	TMDBEnv   *tmdbenv.Env
	ServerEnv *serverenv.Env
	Logger    *zap.SugaredLogger
}
