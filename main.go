package main

import (
	"os"

	"meetpoint/core/logger"
	"meetpoint/core/server"
)

// @title Meetpoint API
// @version 1.0
// @description Backend for coordinating group meetings: aggregates participant
// @description availability into recommended time ranges and ranks candidate
// @description locations by travel distance.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
