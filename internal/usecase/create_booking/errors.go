package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidDateRange возвращается, если заезд в прошлом или выезд не позже заезда
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrUnavailable возвращается, когда номер занят на выбранные даты
	ErrUnavailable = errors.New("create_booking: room is not available for the selected dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
