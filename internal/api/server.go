package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Server wraps the echo instance and its routes.
type Server struct {
	echo *echo.Echo
}

// NewServer builds the HTTP server with logging, recovery and CORS for the
// web frontend origins.
func NewServer(handler *Handler, allowOrigins []string) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"status", v.Status,
				"method", v.Method,
				"uri", v.URI,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			switch {
			case v.Status >= 500:
				slog.Error("http request", attrs...)
			case v.Status >= 400:
				slog.Warn("http request", attrs...)
			default:
				slog.Info("http request", attrs...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	e.POST("/login", handler.Login)
	e.GET("/check-session", handler.CheckSession)
	e.GET("/lineup", handler.GetLineup)
	e.POST("/fix", handler.SaveFix)
	e.GET("/boost-announcement", handler.GetAnnouncement)

	return &Server{echo: e}
}

// Start listens on addr until Shutdown or failure.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
