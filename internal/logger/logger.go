package logger

import (
	"go.uber.org/zap"
)

// Init configures the global zap logger. Infra code that has no
// injected logger uses zap.L().
func Init(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(log)
	return log
}
