package api

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeThreadURL converts a Reddit thread permalink into its JSON
// endpoint: https is forced, the query is replaced with raw_json=1 so
// bodies arrive without HTML entity escaping, and ".json" is appended when
// missing.
func NormalizeThreadURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty thread URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing thread URL: %w", err)
	}
	host := strings.ToLower(u.Hostname())
	if host != "reddit.com" && !strings.HasSuffix(host, ".reddit.com") {
		return "", fmt.Errorf("not a reddit thread URL: %s", raw)
	}

	u.Scheme = "https"
	u.Path = strings.TrimSuffix(u.Path, "/")
	if !strings.HasSuffix(u.Path, ".json") {
		u.Path += ".json"
	}
	u.RawQuery = "raw_json=1"
	u.Fragment = ""
	return u.String(), nil
}
