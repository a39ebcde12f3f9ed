package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"topbookstore-backend/pkg/logger"
)

func main() {
	// .env is for local development; production relies on real
	// environment variables.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}
