package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	wellplayer "github.com/tahsin2627/wellplayer-scraper-backend/pkg"
)

const upstreamProbeTimeout = 5 * time.Second

// Healthcheck reports whether the upstream metadata API is reachable. Any
// HTTP response counts as reachable; only a transport failure is unhealthy.
func Healthcheck(cfg *wellplayer.Config) http.Handler {
	client := &http.Client{Timeout: upstreamProbeTimeout}

	return healthcheck.Handler(
		healthcheck.WithTimeout(upstreamProbeTimeout),
		healthcheck.WithChecker(
			"upstream", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					req, err := http.NewRequestWithContext(ctx, http.MethodHead, cfg.TMDBEnv.BaseURL, nil)
					if err != nil {
						return err
					}

					resp, err := client.Do(req)
					if err != nil {
						cfg.Logger.Errorf("Unable to reach TMDB as part of healthcheck: %s", err)
						return errors.New("unable to reach the upstream service")
					}
					_ = resp.Body.Close()

					return nil
				},
			),
		),
	)
}
