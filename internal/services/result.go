package services

// Result is the outcome of a service operation: either Ok carrying data or
// Err carrying only a human-readable reason. Expected business failures
// (validation, not-found, conflicts) come back as Err results; a Go error
// never crosses the service boundary for those.
type Result[T any] struct {
	OK      bool
	Message string
	Data    T
}

// Ok builds a successful result.
func Ok[T any](message string, data T) Result[T] {
	return Result[T]{OK: true, Message: message, Data: data}
}

// Err builds a failed result. Data is left at the zero value.
func Err[T any](message string) Result[T] {
	return Result[T]{Message: message}
}
