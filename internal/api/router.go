package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/formworks/forms-api/internal/api/handler"
	"github.com/formworks/forms-api/internal/core/service"
	"github.com/formworks/forms-api/internal/infrastructure/db/postgres"
	"github.com/formworks/forms-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cacheTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("forms"))

	// --- Dependencies ---
	cache := redis.NewListCache(rdb, cacheTTL)

	formService := service.NewFormService(postgres.NewFormRepository(pool), cache, log)
	questionService := service.NewQuestionService(postgres.NewQuestionRepository(pool), cache, log)
	answerService := service.NewAnswerService(postgres.NewAnswerRepository(pool), cache, log)
	userService := service.NewUserService(postgres.NewUserRepository(pool), log)

	formHandler := handler.NewFormHandler(formService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)
	userHandler := handler.NewUserHandler(userService)

	// --- Resource routes ---
	v1 := e.Group("/v1")

	v1.GET("/forms", formHandler.List)
	v1.POST("/forms", formHandler.Create)
	v1.PUT("/forms/:form_id", formHandler.Update)
	v1.DELETE("/forms/:form_id", formHandler.Delete)

	v1.GET("/forms/:form_id/questions", questionHandler.ListByForm)
	v1.POST("/questions", questionHandler.Create)
	v1.PUT("/questions/:question_id", questionHandler.Update)
	v1.DELETE("/questions/:question_id", questionHandler.Delete)

	v1.GET("/questions/:question_id/answers", answerHandler.ListByQuestion)
	v1.POST("/questions/:question_id/answers", answerHandler.Create)
	v1.PUT("/answers/:answer_id", answerHandler.Update)
	v1.DELETE("/answers/:answer_id", answerHandler.Delete)
	v1.GET("/users/:user_id/answers", answerHandler.ListByUser)

	v1.GET("/users", userHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
