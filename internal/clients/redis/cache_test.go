package redis

import (
	"github.com/cyclerise/cyclerise-backend/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.NewNop()
}
