package wizard

import (
	"strings"

	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/util/ptr"
)

// BuildSpec creates an EnvironmentSpec from the wizard result.
// Service toggles are always written explicitly.
func BuildSpec(result *WizardResult) *config.EnvironmentSpec {
	spec := &config.EnvironmentSpec{
		Name:    result.Name,
		Region:  result.Region,
		VPCCIDR: strings.TrimSpace(result.VPCCIDR),
		Services: &config.Services{
			S3Bucket:   ptr.Bool(result.S3Bucket),
			ECSCluster: &config.ECSConfig{Enabled: ptr.Bool(result.ECSEnabled)},
		},
	}

	if result.RDSEnabled {
		db := result.Database
		spec.Services.RDS = &config.RDSConfig{
			Enabled:       ptr.Bool(true),
			Engine:        db.Engine,
			InstanceClass: db.InstanceClass,
			DBName:        strings.TrimSpace(db.DBName),
			Username:      strings.TrimSpace(db.Username),
			Password:      db.Password,
		}
	}

	if len(result.Tags) > 0 {
		spec.Tags = make(map[string]string, len(result.Tags))
		for k, v := range result.Tags {
			spec.Tags[k] = v
		}
	}

	return spec
}
