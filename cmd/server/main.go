package main

import (
	"flag"
	"jokerpoker/internal/config"
	"jokerpoker/internal/mux"
	"jokerpoker/pkg/db"
	"jokerpoker/pkg/model"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the config)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := cfg.ConfigureLogger(logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Fatal("could not configure logger")
	}

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(Version, statsStore(cfg)))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// statsStore returns a postgres store if a DSN is configured, otherwise stats live in memory
func statsStore(cfg config.Config) model.StatsStore {
	if cfg.PGDSN == "" {
		logrus.Info("no database configured, player stats are kept in memory")
		return model.NewMemoryStatsStore()
	}

	dbh, err := db.Open(cfg.PGDSN)
	if err != nil {
		logrus.WithError(err).Fatal("could not open database")
	}

	// run the db migrations
	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	db.SetInstance(dbh)
	return model.NewPostgresStatsStore(dbh)
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}
