package wizard

import (
	"github.com/charmbracelet/huh"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/imamik/tfscaffold/internal/config"
)

// DefaultVPCCIDR is proposed as the environment network.
const DefaultVPCCIDR = "10.0.0.0/16"

// regionDescriptions names the location of every supported region.
var regionDescriptions = map[string]string{
	"us-east-1":      "N. Virginia",
	"us-east-2":      "Ohio",
	"us-west-1":      "N. California",
	"us-west-2":      "Oregon",
	"eu-west-1":      "Ireland",
	"eu-west-2":      "London",
	"eu-west-3":      "Paris",
	"eu-central-1":   "Frankfurt",
	"eu-central-2":   "Zurich",
	"ap-south-1":     "Mumbai",
	"ap-northeast-1": "Tokyo",
	"ap-northeast-2": "Seoul",
	"ap-northeast-3": "Osaka",
	"ap-southeast-1": "Singapore",
	"ap-southeast-2": "Sydney",
	"ap-east-1":      "Hong Kong",
	"sa-east-1":      "Sao Paulo",
	"ca-central-1":   "Canada Central",
}

// InstanceClassOption represents a database instance class.
type InstanceClassOption struct {
	Value       string
	Description string
}

// InstanceClasses contains common burstable and general purpose classes.
var InstanceClasses = []InstanceClassOption{
	{Value: "db.t3.micro", Description: "2 vCPU, 1GB RAM (Burstable)"},
	{Value: "db.t3.small", Description: "2 vCPU, 2GB RAM (Burstable)"},
	{Value: "db.t3.medium", Description: "2 vCPU, 4GB RAM (Burstable)"},
	{Value: "db.t4g.micro", Description: "2 vCPU, 1GB RAM (Burstable, ARM)"},
	{Value: "db.m5.large", Description: "2 vCPU, 8GB RAM (General purpose)"},
}

// EngineOptions contains the supported database engines.
var EngineOptions = []huh.Option[string]{
	huh.NewOption("PostgreSQL", config.EnginePostgres),
	huh.NewOption("MySQL", config.EngineMySQL),
}

// RegionsToOptions converts the supported regions to huh select options,
// sorted by region name.
func RegionsToOptions() []huh.Option[string] {
	regions := sets.List(config.ValidRegions)
	opts := make([]huh.Option[string], len(regions))
	for i, region := range regions {
		label := region
		if desc, ok := regionDescriptions[region]; ok {
			label = region + " (" + desc + ")"
		}
		opts[i] = huh.NewOption(label, region)
	}
	return opts
}

// InstanceClassesToOptions converts instance classes to huh select options.
func InstanceClassesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(InstanceClasses))
	for i, ic := range InstanceClasses {
		opts[i] = huh.NewOption(ic.Value+" - "+ic.Description, ic.Value)
	}
	return opts
}
