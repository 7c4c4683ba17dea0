package helpers

import (
	"os"
	"path"

	log "github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// InitLoggers sets the default logger options
func InitLoggers(level log.Level) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(level)

	if err := EnsurePath(LogPath()); err != nil {
		log.WithFields(log.Fields{"error": err}).Warnln("Tried creating the log directory but got an error instead. Only logging to stdout.")
		return
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path.Join(LogPath(), "watchlater.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &log.TextFormatter{},
	})
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Warnln("Tried opening logfile for writing but got an error instead. Only logging to stdout.")
		return
	}
	log.AddHook(hook)
}
