package resume

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
)

// FileSaver performs a direct download into a directory. Bytes are staged in a temporary
// file that is renamed into place, and removed on every failure path.
type FileSaver struct {
	Dir string
}

// NewFileSaver returns a saver writing into dir (the working directory when empty).
func NewFileSaver(dir string) *FileSaver {
	return &FileSaver{Dir: dir}
}

// Save implements Saver.
func (s *FileSaver) Save(ctx context.Context, asset domain.ResumeAsset) (string, error) {
	name := sanitizeFileName(asset.FileName)
	dir := strings.TrimSpace(s.Dir)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".resume-*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(asset.Data); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	final := filepath.Join(dir, name)
	if err := os.Rename(tmpName, final); err != nil {
		return "", fmt.Errorf("move resume into place: %w", err)
	}
	committed = true
	return final, nil
}

// sanitizeFileName keeps only the base name so a server-supplied name cannot escape the
// output directory.
func sanitizeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(strings.ReplaceAll(name, `\`, "/")))
	if name == "" || name == "." || name == ".." || name == "/" {
		return domain.DefaultResumeFileName
	}
	return name
}
