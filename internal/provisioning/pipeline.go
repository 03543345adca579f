package provisioning

import (
	"fmt"
	"time"
)

// RunSteps executes all steps sequentially in declaration order.
//
// Each step's action runs exactly once. A failure that the step classifies
// as ignorable (resource already exists) is recorded and the run continues.
// Any other failure halts the run immediately; remaining steps are recorded
// as skipped and their actions never execute. Nothing is rolled back —
// every creation step is idempotent, so a failed run is safe to repeat.
func RunSteps(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Observer.Printf("Starting deployment with %d steps...", len(steps))

	for i, step := range steps {
		stepStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", step.Name(), i+1, len(steps))

		ctx.Observer.Printf("[%s] starting", name)

		err := step.Provision(ctx)
		if err == nil {
			ctx.State.Record(step.Name(), OutcomeCompleted, nil)
			ctx.Observer.Printf("[%s] completed in %v", name, time.Since(stepStart).Round(time.Millisecond))
			continue
		}

		if classifier, ok := step.(ErrorClassifier); ok && classifier.Ignorable(err) {
			ctx.State.Record(step.Name(), OutcomeAlreadyExists, nil)
			LogResourceExists(ctx.Observer, step.Name(), err.Error())
			continue
		}

		ctx.State.Record(step.Name(), OutcomeFailed, err)
		for _, remaining := range steps[i+1:] {
			ctx.State.Record(remaining.Name(), OutcomeSkipped, nil)
		}
		ctx.Observer.Printf("[%s] failed: %v", name, err)
		return fmt.Errorf("%s step failed: %w", step.Name(), err)
	}

	ctx.Observer.Printf("Deployment completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
