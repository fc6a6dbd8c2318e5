package create_manual_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_manual_booking: room not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_manual_booking: check-out must be after check-in")

	// ErrUnavailable возвращается, когда номер занят на выбранные даты
	ErrUnavailable = errors.New("create_manual_booking: room is not available for the selected dates")

	// ErrAccountCreationFailed возвращается, если не удалось создать гостевую учетную запись
	ErrAccountCreationFailed = errors.New("create_manual_booking: failed to create guest account")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_manual_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_manual_booking: internal error")
)
