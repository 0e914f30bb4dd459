package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bank-clients/internal/client"
	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/internal/service"
	"github.com/MKhiriev/go-bank-clients/internal/store"
	"github.com/MKhiriev/go-bank-clients/internal/tui"
	"github.com/MKhiriev/go-bank-clients/internal/utils"
	"github.com/MKhiriev/go-bank-clients/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("bank-clients").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bank-clients", cfg.Log.File, cfg.Log.Level).WithSession(utils.NewSessionID())
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting bank-clients")

	storages := store.NewClientStorages(cfg.Export, log)
	services := service.NewClientServices(storages, cfg.Export, log)

	ui, err := tui.New(services, cfg.UI, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
