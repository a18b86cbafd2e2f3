// Package queue buffers messages per conversation and hands them to a
// processor in bounded batches.
//
// It is an in-process collaborator for the crypto engine: callers
// enqueue messages as they arrive and drain them in FIFO batches,
// supplying the handler that does the actual work. The service tracks a
// running average of per-batch processing time.
package queue
