package web

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/rshade/countrylist/internal/logging"
)

// RequestID tags each request with a ULID in the X-Request-Id header.
func RequestID() echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: logging.NewTraceID,
	})
}

// ContextLogger attaches logger to the request context, tagged with the
// request id as the trace id.
func ContextLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				ctx = logging.ContextWithTraceID(ctx, id)
			}
			l := logging.WithTraceID(ctx, logger)
			c.SetRequest(c.Request().WithContext(l.WithContext(ctx)))
			return next(c)
		}
	}
}

// RequestLogger logs one line per request through zerolog.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Error != nil {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str(logging.TraceIDField, v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
