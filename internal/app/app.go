package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumenprint/calendarshop-backend/internal/adapter/postgres"
	activityrepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/activity"
	cartrepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/cart"
	catalogrepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/catalog"
	draftrepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/draft"
	imagerepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/image"
	orderrepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/order"
	templaterepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/template"
	userrepo "github.com/lumenprint/calendarshop-backend/internal/adapter/postgres/user"
	"github.com/lumenprint/calendarshop-backend/internal/adapter/provider/mercadopago"
	"github.com/lumenprint/calendarshop-backend/internal/auth"
	"github.com/lumenprint/calendarshop-backend/internal/config"
	cartsvc "github.com/lumenprint/calendarshop-backend/internal/service/cart"
	checkoutsvc "github.com/lumenprint/calendarshop-backend/internal/service/checkout"
	draftsvc "github.com/lumenprint/calendarshop-backend/internal/service/draft"
	"github.com/lumenprint/calendarshop-backend/internal/service/lifecycle"
	ordersvc "github.com/lumenprint/calendarshop-backend/internal/service/order"
	paymentsvc "github.com/lumenprint/calendarshop-backend/internal/service/payment"
	"github.com/lumenprint/calendarshop-backend/internal/transport/middleware"
	"github.com/lumenprint/calendarshop-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services, and serves HTTP until the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)

	drafts := draftrepo.New(pool)
	templates := templaterepo.New(pool)
	catalog := catalogrepo.New(pool)
	images := imagerepo.New(pool)
	carts := cartrepo.New(pool)
	orders := orderrepo.New(pool)
	users := userrepo.New(pool)
	activity := activityrepo.New(pool)

	policy := lifecycle.NewPolicy(drafts)
	payments := mercadopago.NewClientWithURL(cfg.Payment.BaseURL, cfg.Payment.AccessToken, cfg.Payment.Timeout, logger)

	draftService := draftsvc.NewService(logger, drafts, templates, catalog, images, policy, cfg.Shop.MaxDraftsPerUser)
	cartService := cartsvc.NewService(logger, carts, drafts, catalog, policy, tx, cfg.Shop.MaxCartQuantity)
	checkoutService := checkoutsvc.NewService(
		logger, carts, orders, drafts, templates, catalog, users, activity, payments, policy, tx,
		checkoutsvc.SessionConfig{
			Currency:   cfg.Shop.Currency,
			SuccessURL: cfg.Payment.SuccessURL,
			FailureURL: cfg.Payment.FailureURL,
		},
	)
	orderService := ordersvc.NewService(logger, orders, activity, tx)
	paymentService := paymentsvc.NewService(logger, orders, drafts, carts, activity, payments, tx, cfg.Payment.WebhookSecret)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Draft:    rest.NewDraftHandler(draftService, logger),
		Cart:     rest.NewCartHandler(cartService, logger),
		Checkout: rest.NewCheckoutHandler(checkoutService, logger),
		Order:    rest.NewOrderHandler(orderService, logger),
		Payment:  rest.NewPaymentHandler(paymentService, logger),
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.Server.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
