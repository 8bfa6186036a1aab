package logger

// Report aggregates the event log into per-command usage counts.
type Report struct {
	LogEntries int `json:"log_entries"`
	Sessions   int `json:"sessions"`

	BuiltinRuns  map[string]int `json:"builtin_runs,omitempty"`
	ProgramRuns  map[string]int `json:"program_runs,omitempty"`
	LaunchErrors map[string]int `json:"launch_errors,omitempty"`

	seenSessions map[string]bool
}

// Update folds one entry into the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	if r.seenSessions == nil {
		r.seenSessions = make(map[string]bool)
	}
	if !r.seenSessions[le.SessionID] {
		r.seenSessions[le.SessionID] = true
		r.Sessions++
	}

	switch {
	case le.BuiltinRun != nil:
		r.BuiltinRuns = increment(r.BuiltinRuns, le.BuiltinRun.Command)
	case le.ProgramRun != nil:
		r.ProgramRuns = increment(r.ProgramRuns, le.ProgramRun.Command)
	case le.LaunchError != nil:
		r.LaunchErrors = increment(r.LaunchErrors, le.LaunchError.Command)
	}
}

func increment(counts map[string]int, command []string) map[string]int {
	if counts == nil {
		counts = make(map[string]int)
	}
	if len(command) > 0 {
		counts[command[0]]++
	}
	return counts
}
