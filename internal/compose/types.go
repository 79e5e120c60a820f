package compose

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// FormatVersion is the compose file format version marker.
	FormatVersion = "3.8"

	// FileName is the name of the generated compose file inside the
	// cluster's internal working directory.
	FileName = "compose.yml"

	// MinecraftPort is the well-known Minecraft protocol port the proxy
	// listens on inside its container.
	MinecraftPort = 25565
)

// Definition is the declarative cluster definition handed to the compose
// binary: a format version, the service map and the cluster network.
type Definition struct {
	Version  string             `yaml:"version"`
	Services ServiceMap         `yaml:"services"`
	Networks map[string]Network `yaml:"networks"`
}

// Service is a single compose service entry.
type Service struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name"`
	Ports         []string `yaml:"ports,omitempty"`
	Volumes       []string `yaml:"volumes"`
	Networks      []string `yaml:"networks"`
	Restart       string   `yaml:"restart"`
	StdinOpen     bool     `yaml:"stdin_open"`
	TTY           bool     `yaml:"tty"`
}

// Network is a compose network entry.
type Network struct {
	Driver string `yaml:"driver"`
	Name   string `yaml:"name"`
}

// ServiceMap is a service collection that marshals in insertion order, so a
// generated definition is byte-identical across runs. A plain Go map would
// marshal in sorted key order and lose the proxy-first service ordering.
type ServiceMap struct {
	names    []string
	services map[string]Service
}

// Set adds or replaces a service, keeping first-insertion order.
func (m *ServiceMap) Set(name string, svc Service) {
	if m.services == nil {
		m.services = make(map[string]Service)
	}
	if _, exists := m.services[name]; !exists {
		m.names = append(m.names, name)
	}
	m.services[name] = svc
}

// Get returns the service with the given name.
func (m *ServiceMap) Get(name string) (Service, bool) {
	svc, ok := m.services[name]
	return svc, ok
}

// Names returns the service names in insertion order.
func (m *ServiceMap) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Len returns the number of services.
func (m *ServiceMap) Len() int {
	return len(m.names)
}

// MarshalYAML implements yaml.Marshaler, emitting the services as a mapping
// in insertion order.
func (m ServiceMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range m.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		var value yaml.Node
		if err := value.Encode(m.services[name]); err != nil {
			return nil, fmt.Errorf("failed to encode service %s: %w", name, err)
		}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

// Marshal serializes a cluster definition to YAML. The output is
// deterministic for a given definition.
func Marshal(def *Definition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return nil, fmt.Errorf("failed to serialize cluster definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
