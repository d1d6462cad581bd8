package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRequestFile decodes a contact request from a YAML or JSON file.
func LoadRequestFile(path string) (domain.ContactRequest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.ContactRequest{}, errors.New("contact request file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.ContactRequest{}, fmt.Errorf("read contact request file: %w", err)
	}

	return parseRequest(raw, filepath.Ext(path))
}

// parseRequest picks a decoder by extension, trying each known format when the
// extension is not recognised.
func parseRequest(data []byte, ext string) (domain.ContactRequest, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "json", ext: ".json", fn: json.Unmarshal},
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
	}

	known := false
	for _, d := range decoders {
		if d.ext == ext {
			known = true
			break
		}
	}

	var lastErr error
	for _, d := range decoders {
		if known && ext != d.ext {
			continue
		}
		var req domain.ContactRequest
		if err := d.fn(data, &req); err != nil {
			lastErr = fmt.Errorf("decode %s contact request: %w", d.name, err)
			continue
		}
		return req, nil
	}

	if lastErr == nil {
		lastErr = errors.New("contact request file format not recognized (expected YAML or JSON)")
	}
	return domain.ContactRequest{}, lastErr
}
