package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// runMainEnv makes the re-executed test binary call main instead of running tests.
const runMainEnv = "APISCAN_RUN_MAIN"

func TestPanicExitCode(t *testing.T) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestPanicExitCode$")
	cmd.Env = append(os.Environ(), runMainEnv+"=1", "APISCAN_TEST_PANIC=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got %v", err)
	assert.Equal(t, apiscan.ExitPanic, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), "panic: intentional test panic")
}
