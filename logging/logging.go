package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки,
// готовые реализации: Nop и Logrus.
type Logger interface {
	NodeAllocated(storage string, live int)
	NodeAllocationFailed(storage string, err error)
	NodeDeallocated(storage string, live int)
}

// Nop логгер ничего не делающий.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) NodeAllocated(string, int)          {}
func (nopLogger) NodeAllocationFailed(string, error) {}
func (nopLogger) NodeDeallocated(string, int)        {}
