package cmd

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	wellplayer "github.com/tahsin2627/wellplayer-scraper-backend/pkg"
	serverenv "github.com/tahsin2627/wellplayer-scraper-backend/pkg/env/server"
	tmdbenv "github.com/tahsin2627/wellplayer-scraper-backend/pkg/env/tmdb"
	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/handlers"
	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/middleware"
	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/tmdb"
	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/version"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute

	searchTimeout = 1 * time.Minute
)

func Run(logger *zap.SugaredLogger) error {
	production := os.Getenv("ENVIRONMENT") == "production"
	logger.Infof("Starting WellPlayer scraper backend version: %s", version.Version())

	tmdbe := tmdbenv.NewTMDBEnv()
	if err := tmdbe.Populate(); err != nil {
		return fmt.Errorf("unable to configure TMDB: %w", err)
	}
	if tmdbe.DefaultKey {
		logger.Warnf("TMDB_API_KEY is not set, falling back to the built-in default credential")
	}
	logger.Infof("Using TMDB endpoint: %s", tmdbe.BaseURL)

	se := serverenv.NewServerEnv()
	if err := se.Populate(); err != nil {
		return fmt.Errorf("unable to configure HTTP server: %w", err)
	}

	cfg := &wellplayer.Config{
		Search:    tmdb.NewClient(tmdbe),
		TMDBEnv:   tmdbe,
		ServerEnv: se,
		Logger:    logger,
	}

	// Temp workaround for easy to access io.Writer.
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}

	r := router(cfg, defaultLogOutput, healthLogOutput)

	logger.Infof("HTTP server starting on port: %d", se.Port)

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(se.Port)),
		Handler:           r,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("unable to start HTTP server: %w", err)
	}

	return nil
}

func router(cfg *wellplayer.Config, logOutput, healthLogOutput io.Writer) *mux.Router {
	logHandler := gorillaHandlers.LoggingHandler

	searchChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.CORS()),
		alice.Constructor(middleware.Timeout(searchTimeout)),
	).Then(handlers.Search(cfg))

	r := mux.NewRouter()
	r.Handle("/", logHandler(logOutput, middleware.CORS()(handlers.Index()))).Methods("GET")
	r.Handle("/healthcheck", logHandler(healthLogOutput, middleware.CORS()(handlers.Healthcheck(cfg)))).Methods("GET")
	r.Handle("/search", logHandler(logOutput, searchChain)).Methods("GET", "OPTIONS")

	return r
}
