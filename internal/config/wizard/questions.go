package wizard

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/imamik/tfscaffold/internal/config"
)

// environmentNameRegex validates the environment name: 2-64 lowercase alphanumeric with hyphens.
var environmentNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}[a-z0-9]$`)

// runIdentityGroup prompts for the environment name and region.
func runIdentityGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Environment Name").
				Description("2-64 lowercase alphanumeric characters or hyphens").
				Placeholder("my-app-dev").
				Value(&result.Name).
				Validate(validateName),
			huh.NewSelect[string]().
				Title("Region").
				Description("AWS region of the environment").
				Options(RegionsToOptions()...).
				Value(&result.Region),
		).Title("Environment"),
	).RunWithContext(ctx)
}

// runNetworkGroup prompts for the VPC range.
func runNetworkGroup(ctx context.Context, result *WizardResult) error {
	result.VPCCIDR = DefaultVPCCIDR

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("VPC CIDR").
				Description("Split into a public and a private subnet").
				Placeholder(DefaultVPCCIDR).
				Value(&result.VPCCIDR).
				Validate(validateCIDR),
		).Title("Network"),
	).RunWithContext(ctx)
}

// runServicesGroup prompts for the optional managed services.
func runServicesGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("S3 Bucket?").
				Description("Versioned, encrypted bucket").
				Value(&result.S3Bucket),
			huh.NewConfirm().
				Title("RDS Database?").
				Description("Managed PostgreSQL or MySQL instance").
				Value(&result.RDSEnabled),
			huh.NewConfirm().
				Title("ECS Cluster?").
				Description("Container cluster with Container Insights").
				Value(&result.ECSEnabled),
		).Title("Services"),
	).RunWithContext(ctx)
}

// runDatabaseGroup prompts for the database settings.
func runDatabaseGroup(ctx context.Context, result *WizardResult) error {
	db := &result.Database
	db.Engine = config.EnginePostgres
	db.InstanceClass = InstanceClasses[0].Value

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Engine").
				Options(EngineOptions...).
				Value(&db.Engine),
			huh.NewSelect[string]().
				Title("Instance Class").
				Options(InstanceClassesToOptions()...).
				Value(&db.InstanceClass),
			huh.NewInput().
				Title("Database Name").
				Placeholder("app").
				Value(&db.DBName).
				Validate(validateRequired),
			huh.NewInput().
				Title("Master Username").
				Placeholder("admin").
				Value(&db.Username).
				Validate(validateRequired),
			huh.NewInput().
				Title("Master Password").
				Description("At least 8 characters. Stored in terraform.tfvars").
				EchoMode(huh.EchoModePassword).
				Value(&db.Password).
				Validate(validatePassword),
		).Title("Database"),
	).RunWithContext(ctx)
}

// runTagsGroup prompts for resource tags (optional).
func runTagsGroup(ctx context.Context, result *WizardResult) error {
	var tagsInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tags (Optional)").
				Description("Comma-separated key=value pairs applied to every resource").
				Placeholder("team=platform, cost-center=42").
				Value(&tagsInput).
				Validate(validateTags),
		).Title("Tags"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.Tags, err = parseTags(tagsInput)
	return err
}

func validateName(s string) error {
	if s == "" {
		return errNameRequired
	}
	if !environmentNameRegex.MatchString(s) {
		return errNameInvalid
	}
	return nil
}

// validateCIDR accepts ranges the generator can split into two subnets.
func validateCIDR(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errCIDRRequired
	}
	if _, err := config.Partition(s, 2); err != nil {
		return errCIDRInvalid
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errFieldRequired
	}
	return nil
}

func validatePassword(s string) error {
	if utf8.RuneCountInString(s) < config.MinDatabasePasswordLength {
		return errPasswordTooShort
	}
	return nil
}

func validateTags(s string) error {
	_, err := parseTags(s)
	return err
}

// parseTags parses "k=v, k2=v2" into a map. Empty input yields nil.
func parseTags(input string) (map[string]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	tags := make(map[string]string)
	for _, pair := range strings.Split(input, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errTagInvalid
		}
		tags[key] = strings.TrimSpace(value)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
