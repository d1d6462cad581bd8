package resume

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
)

// exitCodeInterrupted is what share helpers conventionally return when dismissed.
const exitCodeInterrupted = 130

// CommandSharer shares the asset through an external helper such as termux-share. The
// file handed to the helper is a temporary copy removed once the helper exits.
type CommandSharer struct {
	name        string
	args        []string
	cancelCodes map[int]struct{}
}

// NewCommandSharer parses command ("termux-share -a send") into a sharer. It returns nil
// when command is blank.
func NewCommandSharer(command string) *CommandSharer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	return &CommandSharer{
		name:        fields[0],
		args:        fields[1:],
		cancelCodes: map[int]struct{}{exitCodeInterrupted: {}},
	}
}

// Available reports whether the helper binary can be found on PATH.
func (c *CommandSharer) Available() bool {
	if c == nil {
		return false
	}
	_, err := exec.LookPath(c.name)
	return err == nil
}

// Share implements Sharer.
func (c *CommandSharer) Share(ctx context.Context, asset domain.ResumeAsset) error {
	dir, err := os.MkdirTemp("", "resume-share-*")
	if err != nil {
		return fmt.Errorf("create share dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, sanitizeFileName(asset.FileName))
	if err := os.WriteFile(path, asset.Data, 0o600); err != nil {
		return fmt.Errorf("stage share file: %w", err)
	}

	args := append(append([]string(nil), c.args...), path)
	out, err := exec.CommandContext(ctx, c.name, args...).CombinedOutput()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if _, ok := c.cancelCodes[exitErr.ExitCode()]; ok {
			return ErrShareCancelled
		}
	}
	return fmt.Errorf("share command %s: %w: %s", c.name, err, readBodySnippet(out))
}
