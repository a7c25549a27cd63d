package main

import (
	"context"
	"time"

	"sufishine-be/internal/api"
	"sufishine-be/internal/cart"
	"sufishine-be/internal/checkout"
	"sufishine-be/internal/config"
	"sufishine-be/internal/db"
	"sufishine-be/internal/logger"
	"sufishine-be/internal/notification"
	"sufishine-be/internal/order"
	"sufishine-be/internal/product"
	"sufishine-be/internal/review"
	"sufishine-be/internal/user"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cartTTL = 7 * 24 * time.Hour

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.L().Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	defer redisClient.Close()

	dispatcher := notification.NewDispatcher(cfg.ResendAPIKey, cfg.MailFrom, cfg.TrackingBaseURL)
	hub := api.NewHub()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	cartStore := cart.NewRedisStore(redisClient, cartTTL)
	cartSvc := cart.NewService(cartStore)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, dispatcher, hub)

	checkoutRepo := checkout.NewRepository(database)
	checkoutSvc := checkout.NewService(checkoutRepo, cartSvc, orderSvc, dispatcher)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo)

	go sweepExpiredSessions(checkoutRepo)

	router := api.NewRouter(&api.Handler{
		Users:    userSvc,
		Products: productSvc,
		Carts:    cartSvc,
		Checkout: checkoutSvc,
		Orders:   orderSvc,
		Reviews:  reviewSvc,
		Hub:      hub,
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

// sweepExpiredSessions drops abandoned checkout sessions once an hour.
func sweepExpiredSessions(repo checkout.Repository) {
	for {
		time.Sleep(time.Hour)

		n, err := repo.DeleteExpired(context.Background(), time.Now().UTC())
		if err != nil {
			logger.L().Warn("failed to sweep expired checkout sessions", zap.Error(err))
			continue
		}
		if n > 0 {
			logger.L().Info("swept expired checkout sessions", zap.Int64("count", n))
		}
	}
}
