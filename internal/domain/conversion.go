package domain

import (
	"context"
	"time"
)

// ConversionEvent is one call to the conversion-tracking endpoint. Payload is
// whatever JSON the page sent; its shape is not checked.
type ConversionEvent struct {
	Payload    any
	RequestID  string
	ClientIP   string
	UserAgent  string
	ReceivedAt time.Time
}

// ConversionRecorder persists or forwards conversion events (a log sink today).
type ConversionRecorder interface {
	Conversion(requestID, clientIP, userAgent string, receivedAt time.Time, payload any)
}

type ConversionUsecase interface {
	TrackConversion(ctx context.Context, event *ConversionEvent)
}
