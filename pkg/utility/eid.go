package utility

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExecutionID identifies one process run. Every log line a binary emits
// carries it, so output from concurrent or repeated runs can be told apart.
type ExecutionID = uuid.UUID

var (
	executionID     ExecutionID
	executionIDOnce sync.Once
	executionIDMu   sync.RWMutex
)

func GetExecutionID() ExecutionID {
	executionIDOnce.Do(func() {
		executionID = uuid.Must(uuid.NewV7())
	})

	executionIDMu.RLock()
	defer executionIDMu.RUnlock()
	return executionID
}

func ResetExecutionID() ExecutionID {
	executionIDMu.Lock()
	defer executionIDMu.Unlock()

	executionID = uuid.Must(uuid.NewV7())
	return executionID
}

// ExecutionField is the conventional log field for the current run.
func ExecutionField() zap.Field {
	return zap.String("eid", GetExecutionID().String())
}
