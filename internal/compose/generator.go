package compose

import (
	"fmt"
	"strings"

	"mcluster/internal/config"
	"mcluster/pkg/logging"
)

const composeSubsystem = "Compose"

// UnresolvedImageError indicates that a service references a Java runtime
// identifier with no entry in the images mapping.
type UnresolvedImageError struct {
	Entity      string // service the reference came from
	JavaVersion string // runtime identifier that failed to resolve
}

// Error implements the error interface
func (e *UnresolvedImageError) Error() string {
	return fmt.Sprintf("image key %q for %q not found in images config", e.JavaVersion, e.Entity)
}

// Generate maps a validated cluster configuration to a cluster definition:
// one service for the Velocity proxy, one per active backend server, and the
// single bridged cluster network. It is a pure function of cfg apart from
// log output; identical input yields an identical definition.
//
// Names in active_servers without a matching server entry are logged as
// warnings and dropped. A java_version missing from the images mapping is
// fatal and returns an *UnresolvedImageError naming the service.
func Generate(cfg *config.ClusterConfig) (*Definition, error) {
	activeNames, unknown := cfg.ResolveActiveServers()
	for _, name := range unknown {
		logging.Warn(composeSubsystem, "Server %q from active_servers is not defined in the servers section and will be ignored", name)
	}
	if cfg.ActiveServers == nil {
		logging.Debug(composeSubsystem, "active_servers not set, activating all %d defined servers", len(activeNames))
	}

	networkName := cfg.ContainerEnv.Network.Name
	images := cfg.ContainerEnv.Images

	var services ServiceMap

	proxyImage, ok := images[cfg.Velocity.JavaVersion]
	if !ok {
		return nil, &UnresolvedImageError{Entity: cfg.Velocity.ServiceName, JavaVersion: cfg.Velocity.JavaVersion}
	}
	logging.Debug(composeSubsystem, "Generating %q proxy service", cfg.Velocity.ServiceName)
	services.Set(cfg.Velocity.ServiceName, Service{
		Image:         proxyImage,
		ContainerName: containerName(cfg.ClusterName, cfg.Velocity.ServiceName),
		Ports:         []string{fmt.Sprintf("%d:%d", cfg.Velocity.Port, MinecraftPort)},
		Volumes:       []string{volumeMount(cfg.ServersDir, cfg.Velocity.ServiceName)},
		Networks:      []string{networkName},
		Restart:       "unless-stopped",
		StdinOpen:     true,
		TTY:           true,
	})

	logging.Debug(composeSubsystem, "Generating %d active server service(s)", len(activeNames))
	for _, name := range activeNames {
		server := cfg.Servers[name]
		image, ok := images[server.JavaVersion]
		if !ok {
			return nil, &UnresolvedImageError{Entity: name, JavaVersion: server.JavaVersion}
		}
		services.Set(name, Service{
			Image:         image,
			ContainerName: containerName(cfg.ClusterName, name),
			Volumes:       []string{volumeMount(cfg.ServersDir, name)},
			Networks:      []string{networkName},
			Restart:       "unless-stopped",
			StdinOpen:     true,
			TTY:           true,
		})
	}

	return &Definition{
		Version:  FormatVersion,
		Services: services,
		Networks: map[string]Network{
			networkName: {
				Driver: "bridge",
				Name:   networkName,
			},
		},
	}, nil
}

// containerName derives the deterministic container name for a service:
// the cluster name lower-cased with spaces replaced by hyphens, joined to
// the service name.
func containerName(clusterName, serviceName string) string {
	slug := strings.ReplaceAll(strings.ToLower(clusterName), " ", "-")
	return slug + "-" + serviceName
}

// volumeMount binds the service's working subdirectory under serversDir into
// the container. The path is relative to the internal working directory the
// compose file lives in, hence the leading parent step.
func volumeMount(serversDir, serviceName string) string {
	return fmt.Sprintf("../%s/%s:/app", serversDir, serviceName)
}
