package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/smscli/internal/client"
	"github.com/MKhiriev/smscli/internal/config"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.NewLogger("smscli").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("smscli", cfg.Log.File)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
