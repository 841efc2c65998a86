package mux

import (
	"jokerpoker/pkg/model"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	stats   model.StatsStore
}

// NewMux returns a new HTTP mux
// If stats is nil, statistics are kept in memory for the life of the process.
func NewMux(version string, stats ...model.StatsStore) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	if len(stats) > 0 && stats[0] != nil {
		this.stats = stats[0]
	} else {
		this.stats = model.NewMemoryStatsStore()
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
		r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
		r.Methods(http.MethodGet).Path("/player/{name}/stats").Handler(this.getPlayerStats())
	}

	r := this.Router
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, nil)
	})

	return this
}
