package terraform

import (
	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/util/ptr"
)

// fullSpec returns a valid spec with every service enabled.
func fullSpec() *config.EnvironmentSpec {
	return &config.EnvironmentSpec{
		Name:    "test-app",
		Region:  "us-east-1",
		VPCCIDR: "10.0.0.0/16",
		Services: &config.Services{
			S3Bucket: ptr.Bool(true),
			RDS: &config.RDSConfig{
				Enabled:       ptr.Bool(true),
				Engine:        "postgres",
				InstanceClass: "db.t3.micro",
				DBName:        "testdb",
				Username:      "admin",
				Password:      "SecurePass123!",
			},
			ECSCluster: &config.ECSConfig{Enabled: ptr.Bool(true)},
		},
		Tags: map[string]string{"env": "dev", "owner": "platform-team"},
	}
}

// minimalSpec returns a valid spec with every service disabled.
func minimalSpec() *config.EnvironmentSpec {
	return &config.EnvironmentSpec{
		Name:     "dev-env",
		Region:   "eu-west-1",
		VPCCIDR:  "192.168.0.0/24",
		Services: &config.Services{S3Bucket: ptr.Bool(false)},
	}
}
