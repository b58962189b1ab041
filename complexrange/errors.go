package complexrange

var (
	// ErrInvalidFragment is returned when a fragment would start after its end.
	ErrInvalidFragment = &Error{"fragment start is after its end"}
	// ErrOutOfBounds is returned when a value lies outside a bounded range's limits.
	ErrOutOfBounds = &Error{"value outside range limits"}
	// ErrIndexOutOfRange is returned by indexed access beyond the fragment count.
	ErrIndexOutOfRange = &Error{"fragment index out of range"}
	// ErrCursorState is returned when a cursor is used out of order.
	ErrCursorState = &Error{"invalid cursor state"}
)

type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	if targetErr, ok := target.(*Error); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
