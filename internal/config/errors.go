package config

import (
	"fmt"
	"strings"
)

// NotFoundError indicates that the configuration file does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file does not exist: %s", e.Path)
}

// ParseError indicates that the configuration file is not valid YAML.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError indicates that the top-level YAML value is not a mapping.
type ShapeError struct {
	Path string
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("configuration file %s does not contain a YAML mapping", e.Path)
}

// SchemaViolationError indicates that a parsed document does not satisfy the
// configuration schema: an unknown key, a field of the wrong shape, or a
// required field left empty.
type SchemaViolationError struct {
	Path   string
	Field  string // offending field path, when known
	Detail string
}

// Error implements the error interface
func (e *SchemaViolationError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("configuration file %s violates the schema", e.Path))
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field '%s'", e.Field))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	return strings.Join(parts, ": ")
}
