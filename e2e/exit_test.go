//go:build e2e && unix

package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitExit(tf *TUITestFramework, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		tf.cmd = nil
		return err
	case <-time.After(timeout):
		return errTimeout
	}
}

var errTimeout = errors.New("timed out waiting for exit")

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should render the first frame")

	require.NoError(t, tf.Quit())
	require.NoError(t, waitExit(tf, 3*time.Second), "q should exit cleanly")
}

func TestQuitKeyIsTypedWhileSearching(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	mark := tf.Mark()
	require.NoError(t, tf.Search("q"))
	require.True(t, tf.SeePlainSince(mark, `No movies match "q"`), "q should be typed into the search box")

	require.NoError(t, tf.LeaveSearch())
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, tf.Quit())
	require.NoError(t, waitExit(tf, 3*time.Second))
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, waitExit(tf, 3*time.Second))
}
