package config

// EnvironmentSpec is the declarative description of a cloud environment.
//
// Field names follow the request body accepted by the HTTP API and the
// environment files read by the CLI. Pointer fields distinguish an explicit
// false from an absent value.
type EnvironmentSpec struct {
	// Name identifies the environment and prefixes every resource name.
	// Lowercase alphanumeric and hyphens, 2-64 characters.
	Name string `json:"name"`

	// Region is the AWS region the environment is placed in.
	Region string `json:"region"`

	// VPCCIDR is the IPv4 range of the environment network. It is split into
	// a public and a private half.
	VPCCIDR string `json:"vpc_cidr"`

	// Services selects the optional managed services.
	Services *Services `json:"services"`

	// Tags are attached to every generated resource.
	Tags map[string]string `json:"tags,omitempty"`
}

// Services holds the optional managed service toggles.
type Services struct {
	// S3Bucket must be set explicitly to true or false.
	S3Bucket *bool `json:"s3_bucket"`

	// RDS configures a relational database. Inert unless Enabled is true.
	RDS *RDSConfig `json:"rds,omitempty"`

	// ECSCluster configures a container cluster. Enabled is required when
	// the block is present.
	ECSCluster *ECSConfig `json:"ecs_cluster,omitempty"`
}

// RDSConfig configures the relational database service.
type RDSConfig struct {
	Enabled       *bool  `json:"enabled,omitempty"`
	Engine        string `json:"engine,omitempty"`
	InstanceClass string `json:"instance_class,omitempty"`
	DBName        string `json:"db_name,omitempty"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
}

// ECSConfig configures the container cluster service.
type ECSConfig struct {
	Enabled *bool `json:"enabled"`
}

// ObjectStorageEnabled reports whether an S3 bucket was requested.
func (s *Services) ObjectStorageEnabled() bool {
	return s != nil && isTrue(s.S3Bucket)
}

// RelationalDatabaseEnabled reports whether the RDS block is present and enabled.
func (s *Services) RelationalDatabaseEnabled() bool {
	return s != nil && s.RDS != nil && isTrue(s.RDS.Enabled)
}

// ContainerClusterEnabled reports whether the ECS block is present and enabled.
func (s *Services) ContainerClusterEnabled() bool {
	return s != nil && s.ECSCluster != nil && isTrue(s.ECSCluster.Enabled)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
