package usecase

import (
	"context"
	"physiowell-web/internal/domain"
	"time"
)

type conversionUsecase struct {
	recorder domain.ConversionRecorder
}

func NewConversionUsecase(recorder domain.ConversionRecorder) domain.ConversionUsecase {
	return &conversionUsecase{recorder: recorder}
}

// TrackConversion records the event as-is; the payload shape is not validated.
func (uc *conversionUsecase) TrackConversion(ctx context.Context, event *domain.ConversionEvent) {
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now()
	}
	uc.recorder.Conversion(event.RequestID, event.ClientIP, event.UserAgent, event.ReceivedAt, event.Payload)
}
