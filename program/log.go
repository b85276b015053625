package program

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// LogEventName is the chaincode event carrying a call's program log.
const LogEventName = "ProgramLog"

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the process logger that program log lines are mirrored to.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func currentLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// LogEvent is the payload of a ProgramLog event.
type LogEvent struct {
	ProgramID ID       `json:"programId"`
	TxID      string   `json:"txId"`
	Logs      []string `json:"logs"`
}

// PublishLogs emits the call's program log as a chaincode event. It runs
// after a transaction succeeds.
func PublishLogs(ctx ContextInterface) error {
	logs := ctx.Logs()
	if len(logs) == 0 {
		return nil
	}

	stub := ctx.GetStub()
	payload, err := json.Marshal(LogEvent{
		ProgramID: ctx.ProgramID(),
		TxID:      stub.GetTxID(),
		Logs:      logs,
	})
	if err != nil {
		return err
	}

	if err := stub.SetEvent(LogEventName, payload); err != nil {
		return fmt.Errorf("failed to set program log event: %v", err)
	}
	return nil
}
