package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dentiscan/backend/internal/metrics"
	mid "github.com/dentiscan/backend/internal/server/middleware"
	"github.com/dentiscan/backend/internal/session"
	"github.com/dentiscan/backend/internal/util"
	"github.com/dentiscan/backend/pkg/locale"
	"github.com/dentiscan/backend/pkg/logger"
	"github.com/dentiscan/backend/pkg/narration"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	sessionTTL := time.Duration(util.GetEnvNumeric("SESSION_TTL_MIN", 60)) * time.Minute
	sessions := session.NewStore(sessionTTL)
	go sessions.RunSweeper(ctx.Done(), time.Minute)

	speech := narration.NewSpeechClient(narration.NewSpeechClientParams{
		BaseURL: util.GetEnv("SPEECH_URL"),
		APIKey:  util.GetEnv("SPEECH_KEY"),
		Model:   util.GetEnv("SPEECH_MODEL"),
	})

	e.Use(mid.AppContextMiddleware(sessions, speech, locale.NewLookup()))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("32M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
