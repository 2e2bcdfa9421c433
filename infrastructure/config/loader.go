package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apperrors "fartgen-backend/pkg/errors"
)

// source resolves a key against the process environment first, then the
// override file. Lookups are case-sensitive in both.
type source struct {
	file map[string]string
}

func newSource(envFile string) (source, error) {
	if envFile == "" {
		return source{}, nil
	}

	file, err := godotenv.Read(envFile)
	if err != nil {
		if os.IsNotExist(err) {
			return source{}, nil
		}
		return source{}, fmt.Errorf("parsing %s: %w", envFile, err)
	}

	return source{file: file}, nil
}

func (s source) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := s.file[key]
	return v, ok
}

// loader evaluates the field schema against a source, collecting every
// coercion failure so a misconfigured process reports all problems at once.
type loader struct {
	src  source
	errs []error
}

// text resolves a string field with a default.
func (l *loader) text(key, def string) string {
	if v, ok := l.src.lookup(key); ok && v != "" {
		return v
	}
	return def
}

// required resolves a string field that has no default. An empty value
// counts as missing.
func (l *loader) required(key string) string {
	v, ok := l.src.lookup(key)
	if !ok || v == "" {
		l.errs = append(l.errs, apperrors.MissingKey(key))
		return ""
	}
	return v
}

// optional resolves a string field with no default that may be absent.
func (l *loader) optional(key string) string {
	v, _ := l.src.lookup(key)
	return v
}

// integer resolves an int field with a default. Malformed input is a load
// error, never a silent fallback.
func (l *loader) integer(key string, def int) int {
	v, ok := l.src.lookup(key)
	if !ok || v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		l.errs = append(l.errs, apperrors.Coercion(key, v, "int", err))
		return def
	}
	return n
}

// boolean resolves a bool field with a default. Accepts the strconv bool
// forms (1/0, t/f, true/false in any common casing) and rejects the rest.
func (l *loader) boolean(key string, def bool) bool {
	v, ok := l.src.lookup(key)
	if !ok || v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		l.errs = append(l.errs, apperrors.Coercion(key, v, "bool", err))
		return def
	}
	return b
}

// list resolves a comma-separated list field with a default. Elements are
// trimmed; empty elements are dropped.
func (l *loader) list(key string, def []string) []string {
	v, ok := l.src.lookup(key)
	if !ok || v == "" {
		return def
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		l.errs = append(l.errs, apperrors.Coercion(key, v, "list", nil))
		return def
	}
	return out
}
