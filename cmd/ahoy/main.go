// Command ahoy statically generates Python package aggregator files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Erotemic/ahoy/internal/adapters/driven/composer"
	configfile "github.com/Erotemic/ahoy/internal/adapters/driven/config/file"
	"github.com/Erotemic/ahoy/internal/adapters/driven/locator"
	"github.com/Erotemic/ahoy/internal/adapters/driven/pyparse"
	"github.com/Erotemic/ahoy/internal/adapters/driven/reader"
	"github.com/Erotemic/ahoy/internal/adapters/driving/cli"
	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"
	"github.com/Erotemic/ahoy/internal/core/services"
	"github.com/Erotemic/ahoy/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var configStore driven.ConfigStore
	if store, err := configfile.NewConfigStore(""); err != nil {
		// A broken config file should not block generation.
		logger.Warn("loading config: %v", err)
	} else {
		configStore = store
	}

	svc := services.NewInitService(
		locator.New(nil),
		reader.New(),
		pyparse.New(),
		composer.New(),
		composer.NewPatcher(),
		domain.BuiltinNames(),
	)

	cli.Configure(svc, configStore)
	cli.SetVersion(version)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
