package check_availability

import (
	"context"

	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *availability.Request) (*availability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
