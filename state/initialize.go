package state

import (
	"time"

	"github.com/google/uuid"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		RunID: uuid.NewString(),
	}
}
