package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создаёт logrus.Logger с полными метками времени.
// Неизвестный уровень не ломает старт: остаётся info, а ошибка возвращается вызывающему.
func New(level string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stdout, level)
}

func NewWithOutput(out io.Writer, level string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		return l, err
	}
	l.SetLevel(lvl)
	return l, nil
}

// Discard — логгер для тестов.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
