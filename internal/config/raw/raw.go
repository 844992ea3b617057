// Package raw reads prefixed environment variables during bootstrap.
// It does not import the logger, so the logger can use it.
package raw

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RootPrefix namespaces every variable read by this module.
const RootPrefix = "HTNLP_"

// Conf is a namespaced view over environment variables.
type Conf struct{ prefix string }

// New returns a view rooted at RootPrefix.
func New() Conf { return Conf{prefix: RootPrefix} }

// Prefix returns a child view with p appended to the prefix (e.g. "LOG_").
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified variable name for k.
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string {
	return strings.TrimSpace(os.Getenv(c.Key(k)))
}

// Get returns the trimmed variable or def when it is unset or blank.
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool parses "1", "true" or "yes" as true; anything else set is false.
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.lookup(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt parses a non-negative integer. Malformed values yield def.
func (c Conf) GetInt(key string, def int) int {
	v := c.lookup(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// GetDuration parses a time.ParseDuration string. Malformed values yield def.
func (c Conf) GetDuration(key string, def time.Duration) time.Duration {
	v := c.lookup(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
