// README: Entry point; loads config, wires services, starts HTTP server and the expiry sweeper.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodbridge/internal/config"
	"foodbridge/internal/geo"
	httptransport "foodbridge/internal/http"
	"foodbridge/internal/infra"
	"foodbridge/internal/metrics"
	"foodbridge/internal/modules/claim"
	"foodbridge/internal/modules/donation"
	"foodbridge/internal/modules/notify"
	"foodbridge/internal/modules/pickup"
	"foodbridge/internal/modules/user"
	"foodbridge/internal/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	verifier := infra.NewJWTVerifier(cfg.Auth.JWTSigningKey)
	promMetrics := metrics.New()

	var geocoder geo.Geocoder
	if cfg.Geocode.AllowRemote() && cfg.Geocode.APIKey != "" {
		geocoder, err = geo.NewGeocoder(cfg.Geocode.APIKey)
		if err != nil {
			log.Fatalf("geocoder init: %v", err)
		}
	}
	resolver := geo.NewResolver(cfg.Geocode, geocoder, logger)

	userStore := user.NewStore(dbPool)
	directory := user.NewDirectory(userStore)

	notifySvc := notify.NewService(notify.NewStore(dbPool), logger)
	claimSvc := claim.NewService(claim.NewStore(dbPool))
	pickupSvc := pickup.NewService(pickup.NewStore(dbPool))
	broadcaster := realtime.NewBroadcaster(redisClient, logger)

	donationSvc := donation.NewService(donation.ServiceDeps{
		Store:     donation.NewStore(dbPool),
		Resolver:  resolver,
		GeoIndex:  donation.NewGeoIndex(redisClient),
		Users:     directory,
		Pickups:   pickupSvc,
		Claims:    claimSvc,
		Notify:    notifySvc,
		Broadcast: broadcaster,
		Metrics:   promMetrics,
		Logger:    logger,
	})
	pickupSvc.SetDonations(donationSvc)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Donations:     donationSvc,
		Pickups:       pickupSvc,
		Claims:        claimSvc,
		Notifications: notifySvc,
		Users:         userStore,
		Verifier:      verifier,
		Logger:        logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go donationSvc.RunAutoExpire(ctx, cfg.Sweep.Interval, cfg.Sweep.Warmup)

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	logger.Info("starting server", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
