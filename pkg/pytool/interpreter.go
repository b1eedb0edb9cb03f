package pytool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultInterpreterBin is the interpreter binary looked up on PATH.
const DefaultInterpreterBin = "python3"

// DefaultInterpreter invokes python3 from PATH.
var DefaultInterpreter = NewInterpreter(DefaultInterpreterBin)

// syntaxExitCode is returned by checkProgram on a syntax error, to separate
// it from interpreter failures.
const syntaxExitCode = 3

// checkProgram parses stdin with the ast module and reports the first syntax
// error as "line<TAB>message" on stdout.
const checkProgram = `import ast, sys
try:
    ast.parse(sys.stdin.read())
except SyntaxError as e:
    print(f"{e.lineno or 0}\t{e.msg}")
    sys.exit(3)
`

// CheckResult is the outcome of a syntax check. Line and Msg are only set
// when OK is false.
type CheckResult struct {
	Msg  string
	Line int
	OK   bool
}

// Interpreter checks Python source syntax using the interpreter's own
// compile facility.
type Interpreter struct {
	bin string
}

// NewInterpreter creates an [Interpreter] using the given binary.
func NewInterpreter(bin string) *Interpreter {
	return &Interpreter{bin: bin}
}

// Available reports whether the interpreter binary can be found on PATH.
func (i *Interpreter) Available() bool {
	return lookPath(i.bin)
}

// Check parses src with the interpreter. A syntax error in src is reported
// in the result, not returned as an error.
func (i *Interpreter) Check(ctx context.Context, src string) (*CheckResult, error) {
	out, _, err := runCmd(ctx, src, i.bin, "-c", checkProgram)
	if err == nil {
		return &CheckResult{OK: true}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != syntaxExitCode {
		return nil, fmt.Errorf("check: %w", err)
	}

	lineStr, msg, _ := strings.Cut(out, "\t")

	line, convErr := strconv.Atoi(lineStr)
	if convErr != nil {
		return nil, fmt.Errorf("check: unexpected report %q: %w", out, convErr)
	}

	return &CheckResult{OK: false, Line: line, Msg: msg}, nil
}
