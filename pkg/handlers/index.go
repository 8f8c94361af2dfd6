package handlers

import (
	"fmt"
	"net/http"
)

func Index() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "WellPlayer Scraper Backend is running!")
	})
}
