package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler runs cleanup once on SIGINT/SIGTERM and exits.
// The returned stop func detaches the handler.
func SetupInterruptHandler(cleanup func()) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-done:
			return
		}

		Interrupted(cleanup)
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}

var exit = os.Exit

// Interrupted runs cleanup and exits with status 1. It serves both signals
// and a Ctrl-C caught by a raw-mode prompt, which never raises SIGINT.
func Interrupted(cleanup func()) {
	fmt.Println("\nInterrupt received. Cleaning up...")
	if cleanup != nil {
		cleanup()
	}
	fmt.Println("\nExiting due to interrupt.")

	exit(1)
}

// RemoveIfEmpty deletes path when it is an empty regular file or directory.
func RemoveIfEmpty(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil || len(entries) > 0 {
			return
		}
	} else if info.Size() > 0 {
		return
	}

	if err := os.Remove(path); err == nil {
		fmt.Printf("Removed empty output: %s\n", path)
	}
}
