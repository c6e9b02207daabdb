package client

// ToastLevel classifies a toast notification.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Notifier receives one transient toast per store action outcome. The UI
// layer plugs in its own implementation.
type Notifier interface {
	Toast(message string, level ToastLevel)
}

type noopNotifier struct{}

func (noopNotifier) Toast(string, ToastLevel) {}
