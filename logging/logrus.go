package logging

import "github.com/sirupsen/logrus"

// Logrus логгер пишущий события хранилищ в logrus.
// Успешные выделения и освобождения пишутся на уровне Debug, неудачи на уровне Error.
func Logrus(log logrus.FieldLogger) Logger {
	return logrusLogger{log: log}
}

type logrusLogger struct {
	log logrus.FieldLogger
}

func (l logrusLogger) NodeAllocated(storage string, live int) {
	l.log.WithFields(logrus.Fields{
		"storage": storage,
		"live":    live,
	}).Debug("node allocated")
}

func (l logrusLogger) NodeAllocationFailed(storage string, err error) {
	l.log.WithField("storage", storage).WithError(err).Error("node allocation failed")
}

func (l logrusLogger) NodeDeallocated(storage string, live int) {
	l.log.WithFields(logrus.Fields{
		"storage": storage,
		"live":    live,
	}).Debug("node deallocated")
}
