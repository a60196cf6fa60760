package bootstrap

import (
	"github.com/mhdatheek136/branfern/config"
	"github.com/mhdatheek136/branfern/internal/logging"
)

func SetupLogging(cfg *config.Config) {
	logging.Setup(cfg.App.LogLevel, cfg.App.Environment, cfg.App.LogFile)
}
