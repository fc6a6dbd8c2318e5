package get_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/HotelBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос из query параметров roomId, status, sortOrder
func ToServiceRequest(roomIDStr, statusStr, sortOrder string) (*models.ListQuery, error) {
	query := &models.ListQuery{SortOrder: sortOrder}

	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("roomId: %w", err)
		}
		query.RoomID = &roomID
	}

	if statusStr != "" {
		query.Status = &statusStr
	}

	return query, nil
}
