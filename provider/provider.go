package provider

// Provider produces a best-effort identifier for the job the current
// process is executing.
//
// JobID returns ok=false when no identifier can be determined. It must
// never panic: implementations absorb every internal failure (missing
// framework state, invocation error, denied access) and report absence
// instead. Callers treat ok=false as a normal outcome, not an error.
type Provider interface {
	JobID() (id string, ok bool)
}

// Compile-time interface checks.
var (
	_ Provider = Absent{}
	_ Provider = (Func)(nil)
)

// Absent is the terminal fallback provider. It is used when no optional
// framework is detected in the process and always reports absence.
type Absent struct{}

// JobID always returns ok=false: there is no way to determine a job
// identifier in this process.
func (Absent) JobID() (string, bool) { return "", false }

// Func adapts a plain function to a Provider. The function is subject to
// the same contract as Provider.JobID: it must never panic.
type Func func() (string, bool)

// JobID calls f.
func (f Func) JobID() (string, bool) { return f() }
