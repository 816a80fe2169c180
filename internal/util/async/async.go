// Package async provides utilities for running independent tasks
// concurrently.
//
// Rendering uses it to produce the artifacts of one environment in
// parallel while keeping the reported error deterministic.
package async

import (
	"context"
	"fmt"
	"sync"
)

// Task represents an operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel starts every task concurrently and waits for all of them to
// finish. When several tasks fail, the error of the task listed first is
// returned, so the outcome does not depend on scheduling.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "main", Func: renderMain},
//	    {Name: "network", Func: renderNetwork},
//	}
//	if err := RunParallel(ctx, tasks); err != nil {
//	    return err
//	}
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Go(func() {
			errs[i] = task.Func(ctx)
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("task %s: %w", tasks[i].Name, err)
		}
	}
	return nil
}

// RunSequential runs tasks one after another in order and stops at the first
// failure. It honors context cancellation between tasks.
func RunSequential(ctx context.Context, tasks []Task) error {
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task.Func(ctx); err != nil {
			return fmt.Errorf("task %s: %w", task.Name, err)
		}
	}
	return nil
}
