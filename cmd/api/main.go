package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alexiva1995/Networkx-back/internal/config"
	"github.com/Alexiva1995/Networkx-back/internal/crypt"
	"github.com/Alexiva1995/Networkx-back/internal/database"
	"github.com/Alexiva1995/Networkx-back/internal/identity"
	"github.com/Alexiva1995/Networkx-back/internal/mailer"
	"github.com/Alexiva1995/Networkx-back/internal/orders"
	"github.com/Alexiva1995/Networkx-back/internal/profile"
	"github.com/Alexiva1995/Networkx-back/internal/referral"
	"github.com/Alexiva1995/Networkx-back/internal/server"
	"github.com/Alexiva1995/Networkx-back/internal/storage"
	"github.com/Alexiva1995/Networkx-back/internal/wallet"
	"github.com/Alexiva1995/Networkx-back/internal/worker"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()

	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Could not connect to redis: %v", err)
	}

	encryptor, err := crypt.New([]byte(cfg.AppKey))
	if err != nil {
		log.Fatalf("Invalid APP_KEY: %v", err)
	}

	directory := referral.NewGormDirectory(db)
	walker := referral.NewWalker(directory)
	presenter := referral.NewPresenter(walker, directory)

	ledger := wallet.NewService(wallet.NewGormEntrySource(db), wallet.NewGormUserSource(db))
	orderRepo := orders.NewRepository(db)

	identityClient := identity.NewClient(cfg.BackendAuthURL, cfg.BackendAuthKey)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	pictures := storage.NewPictureStore(cfg.UploadDir)
	limiter := profile.NewRedisRateLimiter(rdb)

	profileSvc := profile.NewService(
		profile.NewGormUserStore(db),
		profile.NewGormLogStore(db),
		identityClient,
		smtpMailer,
		pictures,
		limiter,
	)

	handlers := server.NewHandlers(db, walker, presenter, ledger, orderRepo, profileSvc, encryptor)
	router := server.NewRouter(cfg, db, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go worker.NewSweeper(db, rdb).Start(ctx)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		slog.Info("Service started", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
	slog.Info("Service stopped")
}
