package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls onChange with the re-read config every time the file at path is written.
// Invalid edits are logged and skipped.
func Watch(path string, onChange func(conf *AppConfig)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		conf, err := decode(v)
		if err != nil {
			zap.L().Warn("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}
