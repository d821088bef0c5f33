package bootstrap

import "fmt"

// Reason classifies a guarded step failure. Every operation is a short
// fail-fast pipeline; the first failing step aborts the run and its reason
// reaches the caller unchanged.
type Reason string

const (
	// ReasonMarkerMissing: the sentinel marker was not found, so the
	// invocation is not rooted in a kattis-util checkout.
	ReasonMarkerMissing Reason = "marker-missing"
	// ReasonEnvCreate: the virtual environment could not be created.
	ReasonEnvCreate Reason = "env-create"
	// ReasonInstaller: pip reported a failure while upgrading itself or
	// installing the manifest.
	ReasonInstaller Reason = "installer"
	// ReasonSubmodule: git could not initialize or update the vendored
	// submodule.
	ReasonSubmodule Reason = "submodule"
	// ReasonEnvRemove: the virtual environment could not be removed.
	ReasonEnvRemove Reason = "env-remove"
)

// StepError is the typed failure a pipeline propagates. There is no
// rollback and no retry; the wrapped error carries the tool diagnostic.
type StepError struct {
	Op     string
	Step   string
	Reason Reason
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
