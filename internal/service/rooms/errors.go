package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomInUse возвращается при удалении номера, на который ссылаются бронирования
	ErrRoomInUse = errors.New("room has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidImage возвращается, когда файл изображения не принят хранилищем
	ErrInvalidImage = errors.New("invalid image")

	// ErrUnknownRoomType возвращается для типа номера без списка удобств
	ErrUnknownRoomType = errors.New("unknown room type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
