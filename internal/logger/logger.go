package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init builds the global logger for environment. Production emits JSON, anything else the
// console encoder.
func Init(environment string) error {
	var conf zap.Config
	if environment == "production" || environment == "prod" {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the global logger in place.
func SetLevel(name string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("lvl.UnmarshalText -> %w", err)
	}

	level.SetLevel(lvl)

	return nil
}

func Level() zapcore.Level {
	return level.Level()
}
