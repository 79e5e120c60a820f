package config

// The schema metadata below drives the commented output of GenerateDefault.
// Each entity carries an ordered field table; the order here is the order in
// which keys are emitted, and the description text becomes the comment block
// ahead of the field. Fields whose value is itself an entity reference the
// nested table so the emitter can walk the tree.

// fieldSpec describes a single configuration field.
type fieldSpec struct {
	// key is the YAML key of the field.
	key string
	// desc is the human-readable description emitted as a comment. An
	// empty desc means the field gets no comment of its own.
	desc string
	// entity is set when the field holds a single nested entity.
	entity *entitySpec
	// elem is set when the field holds a list or map of nested entities;
	// each element is walked with this table, elements themselves are not
	// commented.
	elem *entitySpec
}

// entitySpec is the ordered field table of one configuration entity.
type entitySpec struct {
	name   string
	fields []fieldSpec
}

// field returns the spec for the given YAML key, or nil when the key is not
// part of the entity.
func (e *entitySpec) field(key string) *fieldSpec {
	for i := range e.fields {
		if e.fields[i].key == key {
			return &e.fields[i]
		}
	}
	return nil
}

var networkSchema = &entitySpec{
	name: "network",
	fields: []fieldSpec{
		{
			key:  "name",
			desc: "Name of the container network shared by the proxy and all backend servers.",
		},
	},
}

var containerEnvSchema = &entitySpec{
	name: "container_env",
	fields: []fieldSpec{
		{
			key:    "network",
			entity: networkSchema,
		},
		{
			key: "images",
			desc: "Container images keyed by Java runtime identifier (java8, java21, ...).\n" +
				"Every java_version referenced by the velocity proxy or a server must be a key here. Add new runtime identifiers freely, existing ones keep working.",
		},
	},
}

var velocitySchema = &entitySpec{
	name: "velocity",
	fields: []fieldSpec{
		{
			key:  "service_name",
			desc: "Service name of the Velocity proxy. Also used for its working directory under servers_dir.",
		},
		{
			key:  "java_version",
			desc: "Java runtime identifier the proxy runs on; must be a key of container_env.images.",
		},
		{
			key:  "port",
			desc: "Host port players connect to. It is published to the standard Minecraft port 25565 inside the container.",
		},
	},
}

var serverSchema = &entitySpec{
	name: "server",
	fields: []fieldSpec{
		{
			key:  "java_version",
			desc: "Java runtime identifier this server runs on; must be a key of container_env.images.",
		},
	},
}

var clusterSchema = &entitySpec{
	name: "cluster",
	fields: []fieldSpec{
		{
			key:  "cluster_name",
			desc: "Name of the cluster. Container names are derived from it, lower-cased with spaces replaced by hyphens.",
		},
		{
			key:  "mcluster_dir",
			desc: "Internal working directory. Generated files such as the compose definition are written here.",
		},
		{
			key:  "servers_dir",
			desc: "Directory holding one subdirectory per server; each subdirectory is mounted into its container.",
		},
		{
			key:  "templates_dir",
			desc: "Directory holding server templates used when scaffolding new servers.",
		},
		{
			key:    "container_env",
			desc:   "Container environment: the cluster network and the images used to run each Java runtime.",
			entity: containerEnvSchema,
		},
		{
			key:    "velocity",
			desc:   "The Velocity proxy that fronts the cluster and routes players to backend servers.",
			entity: velocitySchema,
		},
		{
			key:    "servers",
			desc:   "Backend game servers, keyed by name.",
			elem: serverSchema,
		},
		{
			key: "active_servers",
			desc: "Servers to include when bringing the cluster up.\n" +
				"Omit this key to activate every server defined above.\n" +
				"An empty list activates none of them.",
		},
	},
}
