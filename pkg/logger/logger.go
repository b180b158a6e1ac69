package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — глобальный логгер приложения.
// До вызова Init работает с настройками logrus по умолчанию.
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте в main.go.
func Init() {
	// Уровень логирования: LOG_LEVEL, по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" для сбора логов, иначе текст.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}
