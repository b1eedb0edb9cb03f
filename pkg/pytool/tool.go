package pytool

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// CmdError is an error from an external tool invocation.
type CmdError struct {
	Cause  error
	Args   string
	Stderr string
}

func (ce *CmdError) Error() string {
	res := fmt.Sprintf("`%v` failed: %v", ce.Args, ce.Cause)
	if ce.Stderr != "" {
		res = fmt.Sprintf("%s: %s", res, ce.Stderr)
	}

	return res
}

func (ce *CmdError) Unwrap() error {
	return ce.Cause
}

func newCmdError(args string, cause error, stderr string) *CmdError {
	return &CmdError{Args: args, Cause: cause, Stderr: stderr}
}

// runCmd runs an external tool with src piped to stdin, returning stdout and
// stderr. A non-zero exit is returned as a [CmdError] alongside any output
// the tool produced.
func runCmd(ctx context.Context, stdin, name string, arg ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, arg...)

	args := strings.Join(cmd.Args, " ")
	logCtx := slog.With(slog.String("cmd", args))

	var stdout, stderr bytes.Buffer

	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	logCtx.Debug("ran python tool",
		slog.Duration("duration", time.Since(start)),
	)

	out := strings.TrimSuffix(stdout.String(), "\n")
	errOut := strings.TrimSuffix(stderr.String(), "\n")

	if err != nil {
		return out, errOut, newCmdError(args, err, strings.TrimSpace(stderr.String()))
	}

	return out, errOut, nil
}

// lookPath reports whether a binary can be found on PATH.
func lookPath(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}
