package pytool

import (
	"context"
	"fmt"
	"strconv"
)

// DefaultBlackBin is the black binary looked up on PATH.
const DefaultBlackBin = "black"

// DefaultBlack invokes black from PATH.
var DefaultBlack = NewBlack(DefaultBlackBin)

// Black formats Python source with the black formatter.
type Black struct {
	bin string
}

// NewBlack creates a [Black] using the given binary.
func NewBlack(bin string) *Black {
	return &Black{bin: bin}
}

// Available reports whether the black binary can be found on PATH.
func (b *Black) Available() bool {
	return lookPath(b.bin)
}

// Format reformats src to the given line length, reading from stdin and
// writing to stdout (`black -q --line-length N -`).
func (b *Black) Format(ctx context.Context, src string, lineLength int) (string, error) {
	out, _, err := runCmd(ctx, src, b.bin, "-q", "--line-length", strconv.Itoa(lineLength), "-")
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}

	return out, nil
}
