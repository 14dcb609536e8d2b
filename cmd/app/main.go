package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
	commentapp "yatube/internal/core/comment/service"
	feedapp "yatube/internal/core/feed/service"
	followerapp "yatube/internal/core/follower/service"
	pagecacheapp "yatube/internal/core/pagecache/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
)

func main() {
	config.InitLogger(os.Getenv("APP_ENV"))
	defer func() { _ = config.Logger.Sync() }()

	settings, err := config.Init() // بارگذاری تنظیمات از .env
	if err != nil {
		config.Logger.Fatal("Invalid configuration", zap.Error(err))
	}
	logger := config.InitLogger(settings.Env)

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	db, err := config.InitDB(settings)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("Error during migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// اتصال به Redis
	redisClient := config.InitRedis(ctx, settings)

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(logger)

	// آداپترهای خروجی
	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(db)
	pageStore := redisadapter.NewPageCacheRepositoryRedis(redisClient, logger)

	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, logger)

	r := httpapi.SetupRoutes(httpapi.Deps{ // تزریق یوزکیس به آداپتر ورودی
		Users:      userapp.NewUserService(userRepo, []byte(settings.JWTSecret), logger),
		Posts:      postapp.NewPostService(postRepo, groupRepo, commentSvc, logger),
		Comments:   commentSvc,
		Followers:  followerapp.NewFollowerService(followerRepo, logger),
		Feeds:      feedapp.NewFeedService(postRepo, groupRepo, userRepo),
		PageCache:  pagecacheapp.NewPageCache(pageStore, logger),
		CacheTTL:   settings.CacheTTL,
		AdminToken: settings.AdminToken,
	})

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("App is running...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}

	if err := config.CloseDB(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
