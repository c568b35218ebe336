package model

import "errors"

// Failure kinds for the pipeline. Adapters wrap these so the entry point can
// make a single exit-status decision without inspecting adapter internals.
var (
	// ErrData indicates the coverage file is missing or unparseable. Fatal;
	// no partial aggregation is possible.
	ErrData = errors.New("coverage data error")

	// ErrGit indicates the diff computation failed. Non-fatal; the resolver
	// degrades to an empty changed-file set with a warning.
	ErrGit = errors.New("git diff error")

	// ErrAPI indicates a non-2xx response or transport failure from the
	// hosting API. Fatal; no retry.
	ErrAPI = errors.New("github api error")

	// ErrValidation indicates a missing required flag or environment
	// variable. Fatal; surfaced before any I/O is attempted.
	ErrValidation = errors.New("configuration error")
)
