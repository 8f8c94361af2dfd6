package server

import (
	"os"
	"strconv"

	"github.com/tahsin2627/wellplayer-scraper-backend/pkg/env"
)

const defaultPort = 3000

type Env struct {
	Port int
}

func NewServerEnv() *Env {
	return &Env{}
}

func (s *Env) Populate() error {
	port := os.Getenv("PORT")
	if port == "" {
		s.Port = defaultPort
		return nil
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return &env.TypeError{Name: "PORT"}
	}
	s.Port = n

	return nil
}
