package webui

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"kb-app/internal/kb"
)

// NewRouter wires the page handlers, static file serving, and the catch-all
// 404 view. Method mismatches fall through to the 404 view as well.
func NewRouter(openStore kb.StoreOpener, views *Views, staticDir string, logger *zap.Logger) http.Handler {
	api := NewAPI(openStore, views, logger)

	r := mux.NewRouter()
	r.HandleFunc("/", api.HandleIndex).Methods(http.MethodGet)
	r.HandleFunc("/addrow", api.HandleAddForm).Methods(http.MethodGet)
	r.HandleFunc("/add", api.HandleAdd).Methods(http.MethodPost)
	r.HandleFunc("/topics/{topic}/{subtopic}", api.HandleContent).Methods(http.MethodGet)
	r.HandleFunc("/topics/{topic}", api.HandleTopic).Methods(http.MethodGet)

	// Directory listing stays enabled; http.FileServer lists by default.
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))),
	)

	r.NotFoundHandler = http.HandlerFunc(api.HandleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(api.HandleNotFound)

	return r
}
