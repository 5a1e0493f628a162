package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appetiteclub/apt"

	"github.com/signalwire/max-outback/internal/bar"
	"github.com/signalwire/max-outback/internal/console"
	"github.com/signalwire/max-outback/internal/metrics"
	"github.com/signalwire/max-outback/internal/session"
	"github.com/signalwire/max-outback/pkg"
)

const (
	appNamespace = "BAR"
	appName      = "max-outback"
	appVersion   = "0.1.0"

	defaultSessionTTL = 4 * time.Hour
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	catalog := bar.DefaultCatalog()

	var resolver bar.Resolver
	if exact, _ := config.GetString("resolver.exact"); exact == "true" {
		resolver = bar.NewResolver(catalog)
	} else {
		resolver = bar.NewFuzzyResolver(catalog)
	}

	deps := bar.Deps{
		Catalog:  catalog,
		Resolver: resolver,
	}

	var publisher *pkg.NATSPublisher
	if natsURL, _ := config.GetString("nats.url"); natsURL != "" {
		publisher, err = pkg.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("cannot connect to NATS: %v", err)
		}
		defer publisher.Close()
		deps.Publisher = publisher
		logger.Info("event publishing enabled", "url", natsURL)
	}

	engine := bar.NewEngine(deps, logger)

	ttl := defaultSessionTTL
	if ttlStr, ok := config.GetString("session.ttl"); ok && ttlStr != "" {
		parsed, err := time.ParseDuration(ttlStr)
		if err != nil {
			log.Fatalf("invalid session.ttl %q: %v", ttlStr, err)
		}
		ttl = parsed
	}
	store := session.NewStore(ttl)
	defer store.Close()

	reg := metrics.NewRegistry()
	if metricsAddr, _ := config.GetString("metrics.addr"); metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics listener stopped: %v", err)
			}
		}()
		logger.Info("metrics listener enabled", "addr", metricsAddr)
	}

	c := console.New(engine, store, reg, logger, os.Stdin, os.Stdout)

	logger.Infof("Starting %s(%s)", appName, appVersion)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
	}
	logger.Infof("%s(%s) stopped", appName, appVersion)
}
