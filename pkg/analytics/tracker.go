package analytics

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EventConversionTracked = "conversion_tracked"

// Tracker writes conversion events as structured JSON lines, separate from
// the application log so they can be shipped to an analytics sink.
type Tracker struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewTracker builds a production zap logger writing to stdout
func NewTracker(serviceName, environment string) *Tracker {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "event"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	// Sampling would drop bursts of conversions from the same page
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewExample()
	}

	return NewTrackerWithLogger(logger, serviceName, environment)
}

func NewTrackerWithLogger(logger *zap.Logger, serviceName, environment string) *Tracker {
	return &Tracker{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Conversion logs one conversion. The payload is logged verbatim.
func (t *Tracker) Conversion(requestID, clientIP, userAgent string, receivedAt time.Time, payload any) {
	t.zapLogger.Info(EventConversionTracked,
		zap.String("service", t.serviceName),
		zap.String("env", t.environment),
		zap.String("request_id", requestID),
		zap.String("ip", clientIP),
		zap.String("user_agent", userAgent),
		zap.Time("received_at", receivedAt),
		zap.Any("payload", payload),
	)
}

// Sync flushes buffered entries
func (t *Tracker) Sync() error {
	return t.zapLogger.Sync()
}
