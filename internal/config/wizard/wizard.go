package wizard

import (
	"context"
	"fmt"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	// Environment identity
	Name   string
	Region string

	// Network
	VPCCIDR string

	// Services
	S3Bucket   bool
	RDSEnabled bool
	ECSEnabled bool

	// Database settings, only asked for when RDSEnabled is set
	Database DatabaseAnswers

	// Tags applied to every resource
	Tags map[string]string
}

// DatabaseAnswers holds the relational database answers.
type DatabaseAnswers struct {
	Engine        string
	InstanceClass string
	DBName        string
	Username      string
	Password      string
}

// RunWizard runs the interactive environment wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("environment identity: %w", err)
	}

	if err := runNetworkGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	if err := runServicesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}

	if result.RDSEnabled {
		if err := runDatabaseGroup(ctx, result); err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
	}

	if err := runTagsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}

	return result, nil
}
