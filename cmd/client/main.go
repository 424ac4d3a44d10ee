package main

import (
	"fmt"

	"github.com/credvault/credvault/internal/adapter"
	"github.com/credvault/credvault/internal/client"
	"github.com/credvault/credvault/internal/config"
	"github.com/credvault/credvault/internal/crypto"
	"github.com/credvault/credvault/internal/keystore"
	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/internal/service"
	"github.com/credvault/credvault/internal/store"
	"github.com/credvault/credvault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("credvault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	secrets, err := keystore.Open(cfg.App.SecretService)
	if err != nil {
		log.Fatal().Err(err).Msg("open secret store")
	}

	keys := crypto.NewKeyService(secrets)
	codec := service.NewRecordCodec(keys, crypto.NewCodec(), log)

	storages, err := store.NewClientStorages(cfg.Storage, codec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		HashKey: cfg.App.HashKey,
		Timeout: cfg.Remote.RequestTimeout,
	})

	backup := workers.NewDebouncer(cfg.Workers.BackupDebounce)
	services := service.NewServices(remote, storages.Cache, codec, keys, backup, log)

	app := client.NewApp(*cfg, services.Vault, keys, secrets, backup, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
