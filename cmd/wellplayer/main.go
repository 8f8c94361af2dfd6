package main

import (
	"log"

	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/cmd"
	"go.uber.org/zap"
)

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	logger := l.Sugar()
	if err := cmd.Run(logger); err != nil {
		logger.Fatalf("Unable to start the scraper backend: %s", err)
	}
}
