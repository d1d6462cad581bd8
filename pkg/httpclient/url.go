package httpclient

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveURL joins an endpoint path onto base. base must be an absolute http(s) URL;
// any path it carries is kept as a prefix.
func ResolveURL(base, path string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", fmt.Errorf("base url is empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base url %q must use http or https", base)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url %q has no host", base)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
