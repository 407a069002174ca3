package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogrusLogger é a implementação concreta da interface Logger sobre o logrus,
// com saída JSON (timestamp, level, msg e os campos informados).
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogger cria um Logger que escreve JSON no stdout.
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return New(level, os.Stdout)
}

// New cria um Logger com destino configurável (usado nos testes).
func New(level string, out io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
	l.SetLevel(parseLevel(level))
	return &LogrusLogger{log: l}
}

// parseLevel aceita debug, info, warn, error e fatal; qualquer outro valor vira info.
func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error) {
	l.log.WithError(err).Error(msg)
}

// Fatal registra o erro e encerra o processo.
func (l *LogrusLogger) Fatal(msg string, err error) {
	l.log.WithError(err).Fatal(msg)
}
