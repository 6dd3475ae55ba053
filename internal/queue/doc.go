// Package queue holds the work items of one conversion run in memory.
//
// The CLI fills the Queue once with the scanned file paths before any worker
// starts. Workers drain it with the non-blocking Get and acknowledge every
// item they received with Done; Join blocks until every item put into the
// queue has been acknowledged. Nothing is persisted: a queue lives exactly as
// long as the run that created it.
package queue
