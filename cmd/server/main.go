package main

import (
	"github.com/dentiscan/backend/internal/server"
	"github.com/dentiscan/backend/internal/util"
	"github.com/dentiscan/backend/pkg/logger"
	"github.com/dentiscan/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
