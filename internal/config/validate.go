package config

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var (
	// nameRegex allows 2-64 lowercase alphanumerics and hyphens, not starting or ending with a hyphen.
	nameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}[a-z0-9]$`)

	// cidrRegex is a syntax-only IPv4 CIDR check. Octet and prefix bounds are checked separately.
	cidrRegex = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}/\d{1,2}$`)
)

// maxSplittablePrefix is the longest prefix that still splits into a public and a private subnet.
const maxSplittablePrefix = 31

// Validate checks the specification and returns a *ValidationError listing
// every violation, or nil if the specification can be rendered.
func Validate(spec *EnvironmentSpec) error {
	if spec == nil {
		return &ValidationError{Errors: []string{"request body is null"}}
	}

	errs := validateSpec(spec)
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	return &ValidationError{Errors: messages}
}

func validateSpec(spec *EnvironmentSpec) field.ErrorList {
	var errs field.ErrorList

	errs = append(errs, validateName(spec.Name, field.NewPath("name"))...)
	errs = append(errs, validateRegion(spec.Region, field.NewPath("region"))...)
	errs = append(errs, validateVPCCIDR(spec.VPCCIDR, field.NewPath("vpc_cidr"))...)

	servicesPath := field.NewPath("services")
	if spec.Services == nil {
		errs = append(errs, field.Required(servicesPath, ""))
	} else {
		errs = append(errs, validateServices(spec.Services, servicesPath)...)
	}

	return errs
}

func validateName(name string, path *field.Path) field.ErrorList {
	if isBlank(name) {
		return field.ErrorList{field.Required(path, "")}
	}
	if !nameRegex.MatchString(name) {
		return field.ErrorList{field.Invalid(path, name,
			"must be lowercase alphanumeric with hyphens, 2-64 characters, starting and ending with alphanumeric")}
	}
	return nil
}

func validateRegion(region string, path *field.Path) field.ErrorList {
	if isBlank(region) {
		return field.ErrorList{field.Required(path, "")}
	}
	if !ValidRegions.Has(region) {
		return field.ErrorList{field.NotSupported(path, region, sets.List(ValidRegions))}
	}
	return nil
}

func validateVPCCIDR(cidr string, path *field.Path) field.ErrorList {
	if isBlank(cidr) {
		return field.ErrorList{field.Required(path, "")}
	}
	if !cidrRegex.MatchString(cidr) {
		return field.ErrorList{field.Invalid(path, cidr, "must be a valid CIDR notation (e.g., 10.0.0.0/16)")}
	}

	network, err := parseIPv4Network(cidr)
	if err != nil {
		return field.ErrorList{field.Invalid(path, cidr, "octets must be decimal 0-255 without leading zeros and the prefix length 0-32")}
	}
	if size, _ := network.Mask.Size(); size > maxSplittablePrefix {
		return field.ErrorList{field.Invalid(path, cidr, "prefix length must be at most /31 to split into public and private subnets")}
	}
	return nil
}

func validateServices(services *Services, path *field.Path) field.ErrorList {
	var errs field.ErrorList

	if services.S3Bucket == nil {
		errs = append(errs, field.Required(path.Child("s3_bucket"), "must be true or false"))
	}

	if services.ECSCluster != nil && services.ECSCluster.Enabled == nil {
		errs = append(errs, field.Required(path.Child("ecs_cluster", "enabled"), "must be true or false"))
	}

	if services.RelationalDatabaseEnabled() {
		errs = append(errs, validateRDS(services.RDS, path.Child("rds"))...)
	}

	return errs
}

// validateRDS checks an enabled database block. Disabled blocks are never inspected.
func validateRDS(rds *RDSConfig, path *field.Path) field.ErrorList {
	var errs field.ErrorList
	const whenEnabled = "required when RDS is enabled"

	enginePath := path.Child("engine")
	switch {
	case isBlank(rds.Engine):
		errs = append(errs, field.Required(enginePath, whenEnabled))
	case !ValidEngines.Has(rds.Engine):
		errs = append(errs, field.NotSupported(enginePath, rds.Engine, sets.List(ValidEngines)))
	}

	if isBlank(rds.InstanceClass) {
		errs = append(errs, field.Required(path.Child("instance_class"), whenEnabled))
	}
	if isBlank(rds.DBName) {
		errs = append(errs, field.Required(path.Child("db_name"), whenEnabled))
	}
	if isBlank(rds.Username) {
		errs = append(errs, field.Required(path.Child("username"), whenEnabled))
	}

	passwordPath := path.Child("password")
	if isBlank(rds.Password) {
		errs = append(errs, field.Required(passwordPath, whenEnabled))
	}
	if utf8.RuneCountInString(rds.Password) < MinDatabasePasswordLength {
		// The value is omitted so the password never reaches error messages.
		errs = append(errs, field.Invalid(passwordPath, field.OmitValueType{}, "must be at least 8 characters"))
	}

	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
