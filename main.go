package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/soliterra/markfile/pkg/logger"

	"github.com/soliterra/markfile/cmd"
	errUtils "github.com/soliterra/markfile/errors"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Exit with correct POSIX exit code (128 + signal number).
		// Use errUtils.OsExit to allow test interception.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		// Fallback to SIGINT exit code if signal type assertion fails.
		errUtils.OsExit(130)
	}()

	errUtils.OsExit(run())
}

// run executes the root command and returns the process exit code.
// This separation keeps the deep exit in main(), where tests can intercept it.
func run() int {
	err := cmd.Execute()
	if err != nil {
		// Handled diagnostics go to stdout, matching the legacy fixture
		// script this tool replaces. Test harnesses assert on that stream.
		os.Stdout.WriteString(err.Error() + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
