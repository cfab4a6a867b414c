package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/nkanish2002/rediscache"
)

type Logger struct{ E *logrus.Entry }

var _ rediscache.Logger = Logger{}

func (l Logger) Debug(msg string, f rediscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l Logger) Info(msg string, f rediscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (l Logger) Warn(msg string, f rediscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (l Logger) Error(msg string, f rediscache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
