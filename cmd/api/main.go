package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/pyqdeck/pyqdeck-api/internal/config"
	"github.com/pyqdeck/pyqdeck-api/internal/container"
	"github.com/pyqdeck/pyqdeck-api/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		QuestionHandler: c.QuestionContainer.Handler,
	})

	log := config.Logger()
	port := config.GetEnv("PORT", "8080")
	log.Infof("listening on :%s", port)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
