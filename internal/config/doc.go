// Package config defines the mcluster configuration schema and the store
// that reads, writes and validates mcluster.yaml files.
//
// # Configuration file
//
// A cluster is described by a single mcluster.yaml at the project root. The
// Store locates it by walking parent directories (Find), loads and validates
// it against the schema (Load), and writes it back either as a bare document
// (Save) or as a fully commented default (GenerateDefault).
//
// # Schema and comments
//
// Each entity carries a static field table (schema.go) holding the YAML key
// order and a description per field. GenerateDefault walks the configuration
// tree in that declared order and emits every description as a comment block
// ahead of its field, word-wrapped at 80 columns. Save deliberately emits no
// comments: a user-edited file keeps whatever the user wrote, and writing it
// back plain avoids guessing how generated comments should merge with theirs.
//
// # Errors
//
// Load surfaces typed errors: *NotFoundError, *ParseError, *ShapeError and
// *SchemaViolationError. Validate collapses all of them into a boolean for
// pre-flight checks.
package config
