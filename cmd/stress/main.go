// Stress exercises the logger from many goroutines against a rotated file
// chain, then reports write-failure counts.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/notthetup/ulog"
)

const (
	numWorkers    = 32
	logsPerWorker = 500
	logFile       = "stress-0.log"
	maxFiles      = 4
)

func main() {
	logger, err := ulog.NewBuilder().
		LevelString("debug").
		File(logFile).
		MaxFiles(maxFiles).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("stress run starting: %d workers x %d records", numWorkers, logsPerWorker)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < logsPerWorker; i++ {
				switch i % 4 {
				case 0:
					logger.Debugf("worker %d record %d", worker, i)
				case 1:
					logger.Infof("worker %d record %d", worker, i)
				case 2:
					_ = logger.Warningf("worker %d record %d", worker, i)
				default:
					_ = logger.Errorf("worker %d record %d", worker, i)
				}
			}
		}(w)
	}
	wg.Wait()

	tracer := ulog.NewMemTracer(logger)
	buf := tracer.Alloc(4096)
	tracer.Free(buf)

	logger.Infof("stress run complete, write failures: %d", logger.WriteFailures())

	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close failed: %v\n", err)
		os.Exit(1)
	}
}
