package build

// ResultKind classifies the outcome of a substitution pass.
type ResultKind uint8

const (
	// ResultOK means the pass completed its full read-modify-write cycle.
	ResultOK ResultKind = iota
	// ResultRecovered means the pass was skipped or failed to persist, and
	// the run continues. The cause is in Result.Err.
	ResultRecovered
	// ResultFatal means the pass hit a condition the run must not continue
	// past, such as the non-HTML target guard.
	ResultFatal
)

// Result is the outcome of a substitution pass. Callers branch on Kind, not
// on an error hierarchy: a pass never panics and never aborts the process on
// its own.
type Result struct {
	Err      error
	Kind     ResultKind
	Replaced int
}

func okResult(replaced int) Result {
	return Result{Kind: ResultOK, Replaced: replaced}
}

func recoveredResult(err error) Result {
	return Result{Kind: ResultRecovered, Err: err}
}

func fatalResult(err error) Result {
	return Result{Kind: ResultFatal, Err: err}
}

// Fatal reports whether the run must stop.
func (r Result) Fatal() bool {
	return r.Kind == ResultFatal
}
