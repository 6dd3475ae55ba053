// Package workflow drains a run's work queue with a fixed pool of workers.
//
// Manager.Run starts conversion.workers goroutines named converter-1,
// converter-2, and so on. Each repeatedly takes one path from the shared
// queue, hands it to the Converter, reports the outcome, and acknowledges the
// item, stopping as soon as the queue reports empty. Workers share nothing but
// the queue and the summary counters. Per-file failures are logged and
// counted; they never stop the other workers or the run.
//
// Run returns once every enqueued item has been acknowledged and all workers
// have exited. Cancelling the context lets in-flight conversions finish (their
// tools are killed) and discards the items that were still pending.
package workflow
