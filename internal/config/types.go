package config

import "sort"

// ClusterConfig is the top-level configuration structure for mcluster.
// The whole tree is built once per command invocation, either from defaults
// or from an mcluster.yaml on disk, and is not mutated afterwards.
type ClusterConfig struct {
	ClusterName   string                  `yaml:"cluster_name"`
	MclusterDir   string                  `yaml:"mcluster_dir"`
	ServersDir    string                  `yaml:"servers_dir"`
	TemplatesDir  string                  `yaml:"templates_dir"`
	ContainerEnv  ContainerEnvConfig      `yaml:"container_env"`
	Velocity      VelocityConfig          `yaml:"velocity"`
	Servers       map[string]ServerConfig `yaml:"servers"`
	ActiveServers *[]string               `yaml:"active_servers,omitempty"`
}

// ContainerEnvConfig groups the container runtime settings.
type ContainerEnvConfig struct {
	Network NetworkConfig `yaml:"network"`
	Images  ImagesConfig  `yaml:"images"`
}

// NetworkConfig names the shared container network for the cluster.
type NetworkConfig struct {
	Name string `yaml:"name"`
}

// ImagesConfig maps a Java runtime identifier (java8, java21, ...) to a
// container image reference. New runtime identifiers can be added without
// schema changes; services reference them by key.
type ImagesConfig map[string]string

// VelocityConfig configures the Velocity proxy service.
type VelocityConfig struct {
	ServiceName string `yaml:"service_name"`
	JavaVersion string `yaml:"java_version"`
	Port        int    `yaml:"port"`
}

// ServerConfig configures a single backend game server.
type ServerConfig struct {
	JavaVersion string `yaml:"java_version"`
}

// ResolveActiveServers determines which backend servers take part in a
// generated cluster definition. When active_servers is absent every
// configured server is active, sorted by name so that output stays
// deterministic. When the list is present its order is kept and names that
// do not match a configured server are returned separately; they are
// dropped from the active set but are not an error.
func (c *ClusterConfig) ResolveActiveServers() (active, unknown []string) {
	if c.ActiveServers == nil {
		for name := range c.Servers {
			active = append(active, name)
		}
		sort.Strings(active)
		return active, nil
	}

	for _, name := range *c.ActiveServers {
		if _, ok := c.Servers[name]; ok {
			active = append(active, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return active, unknown
}
