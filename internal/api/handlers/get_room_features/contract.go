package get_room_features

type RoomService interface {
	Features(roomType string) ([]string, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
