package main

import (
	"net/http"
	"os"
	"os/signal"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"remit/internal/approval/service"
	approvalstore "remit/internal/approval/store"
	"remit/internal/audit"
	"remit/internal/notify"
	"remit/internal/platform/config"
	"remit/internal/platform/httpserver"
	"remit/internal/platform/logger"
	"remit/internal/platform/metrics"
	httptransport "remit/internal/transport/http"
	"remit/internal/trust"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.VAPIDPrivateKey == "" || cfg.VAPIDPublicKey == "" {
		privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
		if err != nil {
			log.Error("failed to generate VAPID keys", "error", err)
			os.Exit(1)
		}
		cfg.VAPIDPrivateKey, cfg.VAPIDPublicKey = privateKey, publicKey
		log.Warn("generated ephemeral VAPID keys; set VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY to persist subscriptions across restarts",
			"public_key", cfg.VAPIDPublicKey,
		)
	}

	log.Info("initializing remit", "addr", cfg.Addr, "notify_timeout", cfg.NotifyTimeout)

	m := metrics.New()

	subscriptions := notify.NewInMemorySubscriptions()
	trustStore := trust.NewInMemoryStore()
	requestStore := approvalstore.NewInMemoryStore()
	ledger := approvalstore.NewInMemoryLedger()

	auditStore := audit.NewInMemoryStore()
	auditor := audit.NewPublisher(auditStore,
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	defer auditor.Close()

	notifier := notify.NewWebPushNotifier(subscriptions, notify.VAPIDConfig{
		PublicKey:  cfg.VAPIDPublicKey,
		PrivateKey: cfg.VAPIDPrivateKey,
		Subject:    cfg.VAPIDSubject,
	}, log, notify.WithMetrics(m))

	engine := service.NewEngine(
		requestStore,
		ledger,
		trust.NewVerifier(trustStore),
		notifier,
		auditor,
		log,
		service.WithMetrics(m),
		service.WithNotifyTimeout(cfg.NotifyTimeout),
	)

	handler := httptransport.NewHandler(engine, subscriptions, trustStore, cfg.VAPIDPublicKey, log)
	router := httptransport.NewRouter(handler, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	if err := httpserver.Shutdown(srv, 10*time.Second); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
