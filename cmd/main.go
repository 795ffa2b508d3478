package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/delivery-order-service/docs"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/app"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/events"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/gateway"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/handler"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/repo"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Delivery Order Service API
// @version         1.0
// @description     Оформление заказов доставки еды и реконсиляция оплат
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	catalogCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	stripeGateway := gateway.NewStripeGateway(conf.Stripe)
	producer := events.NewProducer(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderRepo, catalogCache, stripeGateway, conf.Stripe.Currency)
	webhookService := service.NewWebhookService(logger, txManager, orderRepo, producer)

	httpHandler := handler.NewHTTPHandler(logger, orderService, conf.Admin.Token)
	webhookHandler := handler.NewWebhookHandler(logger, webhookService, conf.Stripe.WebhookSecret)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetClosers(producer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	catalogCache.StartJanitor(ctx)

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
