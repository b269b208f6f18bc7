// Package pipeline orchestrates the batch conversion: file discovery,
// bounded-concurrency dispatch, per-file conversion tasks, and summary
// reporting.
//
// Concurrency model: a fixed pool of workers consumes tasks from an
// unbuffered channel while the single producer blocks on a weighted
// semaphore sized 2× the worker count before each dispatch. Workers release
// the semaphore on task completion (success or failure), waking the
// producer. Counters are atomic; each task owns its own data, so no other
// state is shared. There is no cancellation mid-batch: a file's failure
// never aborts the run, and shutdown is a clean drain.
package pipeline
