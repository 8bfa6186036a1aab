package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// LogEntry is one recorded event. Exactly one of the event fields is
// set per entry.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id"`

	SessionStart *SessionStart `json:"session_start,omitempty"`
	BuiltinRun   *CommandRun   `json:"builtin_run,omitempty"`
	ProgramRun   *CommandRun   `json:"program_run,omitempty"`
	LaunchError  *LaunchError  `json:"launch_error,omitempty"`
}

// SessionStart marks the beginning of an interactive session.
type SessionStart struct {
	User        string `json:"user,omitempty"`
	Interactive bool   `json:"interactive"`
}

// CommandRun records one dispatched command line.
type CommandRun struct {
	Command    []string `json:"command"`
	ExitStatus int      `json:"exit_status"`
}

// LaunchError records a command line that could not be started.
type LaunchError struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures shell interaction events.
type Logger struct {
	Record LogRecorder
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Discard creates a Logger that drops all events.
func Discard() *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			return nil
		},
	}
}

// NewSession creates a logger with an attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger tags every event with its session's ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

func (s *SessionLogger) record(fill func(le *LogEntry)) {
	le := &LogEntry{
		TimestampMicros: time.Now().UnixMicro(),
		SessionID:       s.sessionID,
	}
	fill(le)

	// Recording failures are deliberately dropped; the shell must
	// not die because its event log did.
	_ = s.Record(le)
}

// SessionStart records the beginning of a session.
func (s *SessionLogger) SessionStart(user string, interactive bool) {
	s.record(func(le *LogEntry) {
		le.SessionStart = &SessionStart{User: user, Interactive: interactive}
	})
}

// BuiltinRun records a dispatched builtin.
func (s *SessionLogger) BuiltinRun(args []string) {
	s.record(func(le *LogEntry) {
		le.BuiltinRun = &CommandRun{Command: args}
	})
}

// ProgramRun records a completed external program with its exit status.
func (s *SessionLogger) ProgramRun(args []string, exitStatus int) {
	s.record(func(le *LogEntry) {
		le.ProgramRun = &CommandRun{Command: args, ExitStatus: exitStatus}
	})
}

// LaunchError records an external program that failed to start.
func (s *SessionLogger) LaunchError(args []string, err error) {
	s.record(func(le *LogEntry) {
		le.LaunchError = &LaunchError{Command: args, Error: err.Error()}
	})
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}
