package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"circus-admin/config"
	"circus-admin/internal/cache"
	"circus-admin/internal/database"
	"circus-admin/internal/handler"
	"circus-admin/internal/middleware"
	"circus-admin/internal/repository"
	"circus-admin/internal/router"
	"circus-admin/internal/security"
	"circus-admin/internal/service"
	"circus-admin/internal/view"
	"circus-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	log := logger.WithComponent("server")

	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE", zap.String("timezone", cfg.Server.Timezone), zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(context.Background(), pool); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	// repositories
	userRepo := repository.NewUserRepository(pool)
	animalRepo := repository.NewAnimalRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	performanceRepo := repository.NewPerformanceRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	humanActRepo := repository.NewHumanActRepository(pool)
	animalActRepo := repository.NewAnimalActRepository(pool)

	// security
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := security.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTTLMin)*time.Minute)
	sessions := cache.NewRedisSessionStore(rdb, time.Duration(cfg.Auth.SessionTTLMin)*time.Minute)

	// services
	userService := service.NewUserService(userRepo, hasher)
	animalService := service.NewAnimalService(animalRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	performanceService := service.NewPerformanceService(performanceRepo, ticketRepo, loc)
	ticketService := service.NewTicketService(ticketRepo)
	humanActService := service.NewHumanActService(humanActRepo)
	animalActService := service.NewAnimalActService(animalActRepo)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	err = userService.Bootstrap(bootCtx, cfg.Bootstrap.Password)
	cancelBoot()
	if err != nil {
		log.Fatal("Failed to bootstrap default accounts", zap.Error(err))
	}

	templates, err := view.Templates()
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	engine := router.New(
		router.Options{
			Policy:    security.DefaultPolicy(),
			Resolver:  middleware.NewSessionResolver(tokens, sessions, userService, cfg.Auth.SessionCookie),
			Templates: templates,
			Static:    view.Static(),
		},
		handler.NewHealthHandler(map[string]handler.Pinger{
			"postgres": pool,
			"redis": handler.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
		}),
		handler.NewAuthHandler(userService, sessions, tokens, cfg.Auth),
		handler.NewUserHandler(userService),
		handler.NewPerformanceHandler(performanceService, employeeService),
		handler.NewTicketHandler(ticketService, performanceService),
		handler.NewEmployeeHandler(employeeService),
		handler.NewAnimalHandler(animalService),
		handler.NewActHandler(humanActService, animalActService, performanceService, employeeService, animalService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
}
