package wizard

import "errors"

// Construction-time failures. Once CreateWizardLayout returns
// successfully, rendering and action handlers do not raise; anything
// that could go wrong is rejected here, naming the offending piece of
// the plan.
var (
	// ErrMissingDoneSection reports a plan without the reserved
	// terminal section.
	ErrMissingDoneSection = errors.New("missing terminal section")

	// ErrUnknownAction reports a dialog option naming an action kind no
	// builder is registered for.
	ErrUnknownAction = errors.New("unknown action kind")
)
