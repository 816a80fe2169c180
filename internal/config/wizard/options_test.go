package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/tfscaffold/internal/config"
)

func TestRegionsToOptions(t *testing.T) {
	t.Parallel()
	opts := RegionsToOptions()

	assert.Len(t, opts, config.ValidRegions.Len())
	for i, opt := range opts {
		assert.True(t, config.ValidRegions.Has(opt.Value), opt.Value)
		assert.Contains(t, opt.Key, opt.Value)
		if i > 0 {
			assert.Less(t, opts[i-1].Value, opt.Value, "options are sorted")
		}
	}
}

func TestRegionDescriptionsCoverValidRegions(t *testing.T) {
	t.Parallel()
	for region := range config.ValidRegions {
		assert.Contains(t, regionDescriptions, region)
	}
}

func TestEngineOptions(t *testing.T) {
	t.Parallel()
	for _, opt := range EngineOptions {
		assert.True(t, config.ValidEngines.Has(opt.Value), opt.Value)
	}
	assert.Len(t, EngineOptions, config.ValidEngines.Len())
}

func TestInstanceClassesToOptions(t *testing.T) {
	t.Parallel()
	opts := InstanceClassesToOptions()

	assert.Len(t, opts, len(InstanceClasses))
	assert.Equal(t, "db.t3.micro", opts[0].Value)
	assert.Contains(t, opts[0].Key, "Burstable")
}

func TestDefaultVPCCIDRIsAccepted(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateCIDR(DefaultVPCCIDR))
}
