package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const localLogger = "logger"

// RequestLogger attaches a request scoped logger (tagged with the request id
// from the requestid middleware) and logs one line per request.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLog := log
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			reqLog = log.With(zap.String("request_id", id))
		}
		c.Locals(localLogger, reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		// Handlers log the cause of the errors they answer themselves; only an
		// error returned up the chain is logged at error level here.
		switch {
		case err != nil:
			reqLog.Error("request", append(fields, zap.Error(err))...)
		case status >= 400:
			reqLog.Warn("request", fields...)
		default:
			reqLog.Info("request", fields...)
		}
		return err
	}
}

// Logger returns the request scoped logger, or a no-op logger outside RequestLogger.
func Logger(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(localLogger).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
