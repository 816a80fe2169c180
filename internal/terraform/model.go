package terraform

import (
	"errors"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/util/naming"
	"github.com/imamik/tfscaffold/internal/util/tags"
)

// subnetCount is the number of subnets the VPC range is split into: one
// public and one private.
const subnetCount = 2

// Model is the data passed to the templates of every artifact.
type Model struct {
	Name              string            `json:"name" yaml:"name"`
	Region            string            `json:"region" yaml:"region"`
	VPCCIDR           string            `json:"vpcCidr" yaml:"vpcCidr"`
	PublicSubnetCIDR  string            `json:"publicSubnetCidr" yaml:"publicSubnetCidr"`
	PrivateSubnetCIDR string            `json:"privateSubnetCidr" yaml:"privateSubnetCidr"`
	S3Enabled         bool              `json:"s3Enabled" yaml:"s3Enabled"`
	RDSEnabled        bool              `json:"rdsEnabled" yaml:"rdsEnabled"`
	RDS               *RDSModel         `json:"rds,omitempty" yaml:"rds,omitempty"`
	ECSEnabled        bool              `json:"ecsEnabled" yaml:"ecsEnabled"`
	Tags              map[string]string `json:"tags" yaml:"tags"`
	DefaultTags       map[string]string `json:"defaultTags" yaml:"defaultTags"`
	Resources         Resources         `json:"resources" yaml:"resources"`
}

// RDSModel holds the database settings. It is only set when the relational
// database service is enabled.
type RDSModel struct {
	Engine        string `json:"engine" yaml:"engine"`
	InstanceClass string `json:"instanceClass" yaml:"instanceClass"`
	DBName        string `json:"dbName" yaml:"dbName"`
	Username      string `json:"username" yaml:"username"`
	Password      string `json:"password" yaml:"password"`
	Port          int    `json:"port" yaml:"port"`
}

// Resources holds the Name tags of the generated resources.
type Resources struct {
	VPC                   string `json:"vpc" yaml:"vpc"`
	InternetGateway       string `json:"internetGateway" yaml:"internetGateway"`
	PublicSubnet          string `json:"publicSubnet" yaml:"publicSubnet"`
	PrivateSubnet         string `json:"privateSubnet" yaml:"privateSubnet"`
	PublicRouteTable      string `json:"publicRouteTable" yaml:"publicRouteTable"`
	Bucket                string `json:"bucket" yaml:"bucket"`
	DatabaseInstance      string `json:"databaseInstance" yaml:"databaseInstance"`
	DatabaseSubnetGroup   string `json:"databaseSubnetGroup" yaml:"databaseSubnetGroup"`
	DatabaseSecurityGroup string `json:"databaseSecurityGroup" yaml:"databaseSecurityGroup"`
	ECSCluster            string `json:"ecsCluster" yaml:"ecsCluster"`
	ECSLogGroup           string `json:"ecsLogGroup" yaml:"ecsLogGroup"`
}

// BuildModel derives the template model from spec.
//
// The spec is expected to have passed config.Validate; for any other input
// the partitioner error (config.ErrInvalidCIDR or config.ErrCapacityExceeded)
// is returned. The result depends only on spec.
func BuildModel(spec *config.EnvironmentSpec) (*Model, error) {
	if spec == nil {
		return nil, errors.New("environment spec is nil")
	}

	subnets, err := config.Partition(spec.VPCCIDR, subnetCount)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Name:              spec.Name,
		Region:            spec.Region,
		VPCCIDR:           spec.VPCCIDR,
		PublicSubnetCIDR:  subnets[0],
		PrivateSubnetCIDR: subnets[1],
		S3Enabled:         spec.Services.ObjectStorageEnabled(),
		RDSEnabled:        spec.Services.RelationalDatabaseEnabled(),
		ECSEnabled:        spec.Services.ContainerClusterEnabled(),
		Tags:              tags.Copy(spec.Tags),
		DefaultTags:       tags.NewBuilder(spec.Name).Build(),
		Resources:         resourcesFor(spec.Name),
	}

	if m.RDSEnabled {
		rds := spec.Services.RDS
		m.RDS = &RDSModel{
			Engine:        rds.Engine,
			InstanceClass: rds.InstanceClass,
			DBName:        rds.DBName,
			Username:      rds.Username,
			Password:      rds.Password,
			Port:          config.EnginePort(rds.Engine),
		}
	}

	return m, nil
}

func resourcesFor(env string) Resources {
	return Resources{
		VPC:                   naming.VPC(env),
		InternetGateway:       naming.InternetGateway(env),
		PublicSubnet:          naming.PublicSubnet(env),
		PrivateSubnet:         naming.PrivateSubnet(env),
		PublicRouteTable:      naming.PublicRouteTable(env),
		Bucket:                naming.Bucket(env),
		DatabaseInstance:      naming.DatabaseInstance(env),
		DatabaseSubnetGroup:   naming.DatabaseSubnetGroup(env),
		DatabaseSecurityGroup: naming.DatabaseSecurityGroup(env),
		ECSCluster:            naming.ECSCluster(env),
		ECSLogGroup:           naming.ECSLogGroup(env),
	}
}

// Redacted returns a copy of m with the database password masked.
func (m *Model) Redacted() *Model {
	c := *m
	c.Tags = tags.Copy(m.Tags)
	c.DefaultTags = tags.Copy(m.DefaultTags)
	if m.RDS != nil {
		rds := *m.RDS
		if rds.Password != "" {
			rds.Password = redactedValue
		}
		c.RDS = &rds
	}
	return &c
}

const redactedValue = "********"
