package main

import (
	"romantic-api/core/logger"
	"romantic-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
