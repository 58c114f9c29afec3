package app

import (
	"log/slog"

	"github.com/melendez-dev/transmetro-gtfs/internal/appconf"
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
	"github.com/melendez-dev/transmetro-gtfs/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers and
// middleware: the configuration, the logger, the schedule store loaded at
// startup and the metrics collector. The store is read-only after load, so it
// is shared by every request without locking.
type Application struct {
	Config     appconf.Config
	GtfsConfig gtfs.Config
	Logger     *slog.Logger
	Store      *gtfs.Store
	Metrics    *metrics.Collector
}
