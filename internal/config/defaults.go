package config

const (
	// ConfigFileName is the canonical name of the cluster configuration file.
	ConfigFileName = "mcluster.yaml"

	// DefaultMclusterDir is the default internal working directory.
	DefaultMclusterDir = ".mcluster"
	// DefaultServersDir is the default directory for server working directories.
	DefaultServersDir = "servers"
	// DefaultTemplatesDir is the default directory for server templates.
	DefaultTemplatesDir = "templates"

	// DefaultVelocityServiceName is the default service name of the proxy.
	DefaultVelocityServiceName = "velocity"
	// DefaultVelocityPort is the default host port the proxy listens on.
	DefaultVelocityPort = 25565

	defaultJava8Image  = "docker.io/itzg/minecraft-server:java8"
	defaultJava21Image = "docker.io/itzg/minecraft-server:java21"
)

// DefaultConfig returns the default cluster configuration for a fresh
// project. The cluster name and network name are seeded from projectName;
// everything else uses the declared schema defaults, including a small
// starter pair of servers.
func DefaultConfig(projectName string) *ClusterConfig {
	return &ClusterConfig{
		ClusterName:  projectName,
		MclusterDir:  DefaultMclusterDir,
		ServersDir:   DefaultServersDir,
		TemplatesDir: DefaultTemplatesDir,
		ContainerEnv: ContainerEnvConfig{
			Network: NetworkConfig{
				Name: projectName + "_net",
			},
			Images: ImagesConfig{
				"java8":  defaultJava8Image,
				"java21": defaultJava21Image,
			},
		},
		Velocity: VelocityConfig{
			ServiceName: DefaultVelocityServiceName,
			JavaVersion: "java21",
			Port:        DefaultVelocityPort,
		},
		Servers: map[string]ServerConfig{
			"lobby":    {JavaVersion: "java21"},
			"survival": {JavaVersion: "java8"},
		},
		ActiveServers: &[]string{"lobby", "survival"},
	}
}

// applyDefaults fills the declared defaults into fields the loaded document
// left unset. Fields without a declared default (cluster_name, the network
// name, server java versions) are left alone; Load rejects them when empty.
func applyDefaults(cfg *ClusterConfig) {
	if cfg.MclusterDir == "" {
		cfg.MclusterDir = DefaultMclusterDir
	}
	if cfg.ServersDir == "" {
		cfg.ServersDir = DefaultServersDir
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = DefaultTemplatesDir
	}
	if cfg.ContainerEnv.Images == nil {
		cfg.ContainerEnv.Images = ImagesConfig{
			"java8":  defaultJava8Image,
			"java21": defaultJava21Image,
		}
	}
	if cfg.Velocity.ServiceName == "" {
		cfg.Velocity.ServiceName = DefaultVelocityServiceName
	}
	if cfg.Velocity.JavaVersion == "" {
		cfg.Velocity.JavaVersion = "java21"
	}
	if cfg.Velocity.Port == 0 {
		cfg.Velocity.Port = DefaultVelocityPort
	}
	if cfg.Servers == nil {
		cfg.Servers = map[string]ServerConfig{}
	}
}
