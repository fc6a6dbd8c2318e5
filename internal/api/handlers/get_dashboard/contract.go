package get_dashboard

import (
	"context"

	getDashboard "github.com/m04kA/HotelBookingService/internal/usecase/get_dashboard"
)

type DashboardUseCase interface {
	Execute(ctx context.Context) (*getDashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
