package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
	"github.com/pyqdeck/pyqdeck-api/internal/middlewares"
	"github.com/pyqdeck/pyqdeck-api/internal/question"
)

type RouterConfig struct {
	QuestionHandler *question.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/pyq", func(r chi.Router) {
		r.Mount("/", question.Routes(cfg.QuestionHandler))
	})

	return r
}
