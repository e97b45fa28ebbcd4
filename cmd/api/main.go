package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/carstock/carstock-go/internal/config"
	"github.com/carstock/carstock-go/internal/handler"
	"github.com/carstock/carstock-go/internal/middleware"
	"github.com/carstock/carstock-go/internal/repository"
	"github.com/carstock/carstock-go/internal/service"
	"github.com/carstock/carstock-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DBPath)
	if err != nil {
		slog.Error("database open failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		slog.Error("schema setup failed", "error", err)
		os.Exit(1)
	}

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		slog.Error("image store setup failed", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	carService := service.NewCarService(carRepo, images)

	authHandler := handler.NewAuthHandler(authService)
	carHandler := handler.NewCarHandler(carService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", handler.HandleRoot)
	r.Get("/docs", handler.HandleDocs)
	r.Post("/token", authHandler.HandleToken)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, authService))
		r.Get("/users/me/", authHandler.HandleMe)

		r.Get("/car_models/", carHandler.HandleList)
		r.Post("/car_models/", carHandler.HandleCreate)
		r.Get("/car_models/{id}", carHandler.HandleGet)
		r.Put("/car_models/{id}", carHandler.HandleUpdate)
		r.Delete("/car_models/{id}", carHandler.HandleDelete)

		r.Post("/car_models/{id}/image/", carHandler.HandleUploadImage)
		r.Put("/car_models/{id}/image/", carHandler.HandleUpdateImage)
		r.Delete("/car_models/{id}/image/", carHandler.HandleDeleteImage)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
