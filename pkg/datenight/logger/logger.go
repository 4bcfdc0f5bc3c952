package logger

import (
	"go.uber.org/zap"

	"github.com/ImGajeed76/datenight/pkg/datenight/config"
)

// New builds the program logger. The terminal belongs to the UI, so without a
// log file nothing is logged at all.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}

	return zcfg.Build()
}
