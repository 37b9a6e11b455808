package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/internal/session"
	"github.com/dentiscan/backend/internal/util"
	"github.com/dentiscan/backend/pkg/analysis"
	"github.com/dentiscan/backend/pkg/locale"
	"github.com/dentiscan/backend/pkg/narration"
)

// HeaderAPIKey lets a session supply the analysis credential per request
// when none is configured in the environment. It is never persisted.
const HeaderAPIKey = "X-Api-Key"

// HeaderSessionID carries the interactive session id.
const HeaderSessionID = "X-Session-Id"

type App struct {
	Analysis *analysis.Client
	Speech   narration.Synthesizer
	Sessions *session.Store
	Locale   locale.Lookup
}

type AppContext struct {
	echo.Context
	App *App
}

// HasCredential reports whether an analysis credential is available for
// this request, from the environment or the per-request header.
func (a *AppContext) HasCredential() bool {
	return util.GetEnv("ANALYSIS_KEY") != "" ||
		a.Request().Header.Get(HeaderAPIKey) != ""
}

// SessionID returns the request's session id, or "" when absent.
func (a *AppContext) SessionID() string {
	return a.Request().Header.Get(HeaderSessionID)
}

// AppContextMiddleware wires the per-request application context. The
// analysis client is rebuilt per request so a header-supplied credential
// overrides the environment one without ever being stored.
func AppContextMiddleware(
	sessions *session.Store,
	speech narration.Synthesizer,
	lookup locale.Lookup,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := util.GetEnv("ANALYSIS_KEY")
			if headerKey := c.Request().Header.Get(HeaderAPIKey); headerKey != "" {
				apiKey = headerKey
			}

			client := analysis.NewClient(analysis.NewClientParams{
				BaseURL: util.GetEnv("ANALYSIS_URL"),
				APIKey:  apiKey,
				Model:   util.GetEnv("ANALYSIS_MODEL"),
			})

			app := &App{
				Analysis: client,
				Speech:   speech,
				Sessions: sessions,
				Locale:   lookup,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
