//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newField creates a test framework with an isolated workspace
func newField(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	return tf
}

// start launches the binary and waits for the first frame
func start(t *testing.T, tf *TUITestFramework, args ...string) {
	t.Helper()
	require.NoError(t, tf.StartApp(args...), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
}

// startField starts the binary with the built-in demo catalog
func startField(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := newField(t)
	start(t, tf, args...)
	return tf
}

// waitExit waits for the process to exit, falling back to Ctrl+C
func waitExit(t *testing.T, tf *TUITestFramework) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	select {
	case err := <-done:
		t.Logf("Process exited (err: %v)", err)
		return
	case <-time.After(1500 * time.Millisecond):
		t.Logf("Process still running, sending Ctrl+C")
		tf.SendCtrlC()
	}

	select {
	case <-done:
	case <-time.After(750 * time.Millisecond):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit")
	}
}
