package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/escuela-api/escuela_api/internal/config"
	"github.com/escuela-api/escuela_api/internal/middleware"
	"github.com/escuela-api/escuela_api/internal/teacher"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. A nil DB falls
// back to the in-memory repository, which is only acceptable in development.
func Setup(app *fiber.App, d Deps) error {
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	RegisterHealthRoutes(app, d)

	var repo teacher.Repository
	if d.DB != nil {
		repo = teacher.NewPostgresRepository(d.DB)
	} else {
		repo = teacher.NewMemoryRepository()
	}
	svc := teacher.NewService(repo)
	handler := teacher.NewHandler(svc, []byte(d.Cfg.JWTSecret), d.Cfg.TokenTTL, d.Logger)

	RegisterTeacherRoutes(app, handler)
	RegisterProfileRoute(app, repo, []byte(d.Cfg.JWTSecret))

	return nil
}
