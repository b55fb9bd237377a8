// Package workers runs the background jobs of the sync client as one unit:
// the reachability prober and the periodic sync trigger.
package workers

import "context"

// Worker is a background job. Run starts it without blocking; the job lives
// until ctx is cancelled or Stop is called. Stop blocks until the job has
// exited and is a no-op for a job that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
