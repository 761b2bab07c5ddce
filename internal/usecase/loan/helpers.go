package loan

import (
	"time"

	"github.com/rs/zerolog"
)

func actor(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

func orNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

func orNop(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return logger
}
