package http

import (
	"weather-api/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger defines hooks for logging outbound HTTP requests and responses.
type HTTPLogger interface {
	// LogRequest is called before the request is sent.
	LogRequest(method, url string)

	// LogResponseSuccess is called after receiving a non-error HTTP status.
	LogResponseSuccess(method, url string, httpStatus int, latencyMs int64)

	// LogResponseError is called after a transport failure or an error HTTP status.
	LogResponseError(method, url string, httpStatus int, latencyMs int64, err error)
}

// zapHTTPLogger logs outbound calls through the application logger.
type zapHTTPLogger struct{}

// NewZapHTTPLogger returns an HTTPLogger backed by the zap singleton.
func NewZapHTTPLogger() HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latencyMs int64) {
	log.Debug("outbound response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latencyMs),
	)
}

func (zapHTTPLogger) LogResponseError(method, url string, httpStatus int, latencyMs int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latencyMs),
		zap.Error(err),
	)
}
