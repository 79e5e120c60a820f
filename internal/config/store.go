package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcluster/pkg/logging"

	"gopkg.in/yaml.v3"
)

const storeSubsystem = "ConfigStore"

// commentWidth is the column comments are word-wrapped at.
const commentWidth = 80

// yamlIndent matches the indentation of generated and saved documents so the
// two save paths produce files that diff cleanly against each other.
const yamlIndent = 2

// headerBanner is prepended to generated default configuration files.
const headerBanner = "===================================================\n" +
	"mcluster configuration\n" +
	"Generated by `mcluster init`\n" +
	"==================================================="

// Store reads, writes and validates mcluster.yaml files. It holds no state;
// construct one at startup and pass it to whatever needs configuration
// access.
type Store struct{}

// NewStore creates a new configuration store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and validates the cluster configuration at path.
//
// It fails with *NotFoundError when the file does not exist, *ParseError
// when the content is not valid YAML, *ShapeError when the top-level value
// is not a mapping, and *SchemaViolationError when the mapping does not
// satisfy the schema (unknown key at any depth, wrong field shape, or a
// required field left empty). On success the returned configuration is fully
// defaulted.
func (s *Store) Load(path string) (*ClusterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug(storeSubsystem, "Configuration file does not exist: %s", path)
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, &ShapeError{Path: path}
	}

	// The document parsed, so any decode error from here on is a schema
	// mismatch, not a syntax problem.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg ClusterConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, &SchemaViolationError{Path: path, Detail: err.Error()}
	}

	applyDefaults(&cfg)
	if err := validate(&cfg, path); err != nil {
		return nil, err
	}

	logging.Debug(storeSubsystem, "Loaded and validated configuration from %s", path)
	return &cfg, nil
}

// Save serializes cfg to path as plain YAML, creating parent directories as
// needed. The write goes through a temporary file and a rename so a failure
// never leaves a truncated configuration behind. Save emits no comments;
// only GenerateDefault produces a commented document.
func (s *Store) Save(cfg *ClusterConfig, path string) (string, error) {
	data, err := marshalConfig(cfg, nil)
	if err != nil {
		return "", fmt.Errorf("failed to serialize configuration: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	logging.Debug(storeSubsystem, "Saved configuration for cluster %q to %s", cfg.ClusterName, path)
	return path, nil
}

// GenerateDefault writes a fully commented default configuration to path.
// The cluster name and network name are seeded from projectName. For every
// field whose schema entry carries a description, the description is emitted
// as a comment block directly above the field, word-wrapped at 80 columns.
func (s *Store) GenerateDefault(projectName, path string) (string, error) {
	cfg := DefaultConfig(projectName)
	data, err := marshalConfig(cfg, clusterSchema)
	if err != nil {
		return "", fmt.Errorf("failed to generate default configuration: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	logging.Info(storeSubsystem, "Generated default configuration for %q at %s", projectName, path)
	return path, nil
}

// Validate reports whether the file at path loads cleanly. It swallows the
// error detail; use Load directly when the caller needs to branch on the
// failure kind.
func (s *Store) Validate(path string) bool {
	if _, err := s.Load(path); err != nil {
		logging.Debug(storeSubsystem, "Validation of %s failed: %v", path, err)
		return false
	}
	return true
}

// marshalConfig encodes cfg to YAML. With a non-nil schema the document is
// annotated with schema comments and the header banner; with nil it is a
// bare document.
func marshalConfig(cfg *ClusterConfig, schema *entitySpec) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(cfg); err != nil {
		return nil, err
	}
	if schema != nil {
		annotate(&root, schema)
		root.HeadComment = headerBanner
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// annotate attaches schema comments to a mapping node. For fields holding a
// nested entity the field's own description wins for the comment text, and
// the nested field table is walked for the children either way. Elements of
// entity lists and maps get no comment themselves, only their children do.
func annotate(node *yaml.Node, spec *entitySpec) {
	if node.Kind != yaml.MappingNode || spec == nil {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		fs := spec.field(key.Value)
		if fs == nil {
			continue
		}
		if fs.desc != "" {
			key.HeadComment = wrapText(fs.desc, commentWidth)
		}
		switch {
		case fs.entity != nil:
			annotate(value, fs.entity)
		case fs.elem != nil:
			switch value.Kind {
			case yaml.SequenceNode:
				for _, item := range value.Content {
					annotate(item, fs.elem)
				}
			case yaml.MappingNode:
				for j := 1; j < len(value.Content); j += 2 {
					annotate(value.Content[j], fs.elem)
				}
			}
		}
	}
}

// wrapText word-wraps a description for use as a comment. Explicit line
// breaks are preserved and each line is wrapped independently; continuation
// lines are indented by two spaces. Words longer than the width are kept
// whole.
func wrapText(text string, width int) string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	const contIndent = "  "
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = contIndent + word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

// writeFileAtomic writes data to path via a temporary file in the same
// directory followed by a rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".mcluster-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename %s to %s: %w", tmpName, path, err)
	}
	return nil
}

// validate checks the fields that have no declared default.
func validate(cfg *ClusterConfig, path string) error {
	if strings.TrimSpace(cfg.ClusterName) == "" {
		return &SchemaViolationError{Path: path, Field: "cluster_name", Detail: "is required"}
	}
	if strings.TrimSpace(cfg.ContainerEnv.Network.Name) == "" {
		return &SchemaViolationError{Path: path, Field: "container_env.network.name", Detail: "is required"}
	}
	for name, server := range cfg.Servers {
		if strings.TrimSpace(server.JavaVersion) == "" {
			return &SchemaViolationError{
				Path:   path,
				Field:  fmt.Sprintf("servers.%s.java_version", name),
				Detail: "is required",
			}
		}
	}
	return nil
}
