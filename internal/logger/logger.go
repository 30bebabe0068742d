package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// level is shared by every logger Init builds so SetLevel takes effect
// without rebuilding the global logger.
var level = zap.NewAtomicLevel()

// Init replaces the global zap logger. Production gets JSON output, any
// other environment the development console encoder.
func Init(env, lvl string) error {
	var conf zap.Config
	if env == "production" {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}

	if err := SetLevel(lvl); err != nil {
		return err
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}
	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the running logger. An empty string keeps
// the current level.
func SetLevel(lvl string) error {
	if lvl == "" {
		return nil
	}
	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return fmt.Errorf("level.UnmarshalText -> %w", err)
	}
	return nil
}

func Level() string {
	return level.String()
}
