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
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/tellis/tellis-go/internal/config"
	"github.com/tellis/tellis-go/internal/handler"
	"github.com/tellis/tellis-go/internal/middleware"
	"github.com/tellis/tellis-go/internal/repository"
	"github.com/tellis/tellis-go/internal/service"
	"github.com/tellis/tellis-go/internal/session"
	"github.com/tellis/tellis-go/internal/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db, cfg.DatabaseDriver); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	denylist, err := token.NewDenylist(cfg.TokenTTL)
	if err != nil {
		slog.Error("denylist init failed", "error", err)
		os.Exit(1)
	}

	cookies := session.Config{TTL: cfg.TokenTTL, Secure: cfg.IsProduction()}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService, cookies, denylist)

	taskRepo := repository.NewTaskRepository(db)
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handler.NewTaskHandler(taskService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CookieAuth(cfg.JWTSecret, denylist))
		r.Get("/api/auth/me", authHandler.HandleMe)
		r.Get("/api/auth/logout", authHandler.HandleLogout)
		r.Post("/api/auth/logout", authHandler.HandleLogout)

		r.Post("/api/tasks", taskHandler.HandleCreate)
		r.Get("/api/tasks", taskHandler.HandleList)
		r.Get("/api/tasks/{id}", taskHandler.HandleGet)
		r.Put("/api/tasks/{id}", taskHandler.HandleUpdate)
		r.Delete("/api/tasks/{id}", taskHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
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
