package log

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// runIDField é o campo que correlaciona todas as linhas de log de uma
// mesma execução do job.
const runIDField = "run_id"

// Setup configura o formato dos logs do processo
func Setup() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// SetLevel define o nível de log com base na configuração
func SetLevel(level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

// NewRunLogger cria o logger injetado nos componentes de uma execução.
// Nenhum componente loga por estado global implícito: todos recebem esta
// capacidade explicitamente.
func NewRunLogger() logrus.FieldLogger {
	return logrus.WithField(runIDField, uuid.New().String())
}
