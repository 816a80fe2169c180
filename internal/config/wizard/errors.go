package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errNameRequired     = errors.New("environment name is required")
	errNameInvalid      = errors.New("environment name must be 2-64 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	errCIDRRequired     = errors.New("CIDR is required")
	errCIDRInvalid      = errors.New("invalid CIDR (expected x.x.x.x/xx with a prefix of at most /31)")
	errFieldRequired    = errors.New("value is required")
	errPasswordTooShort = errors.New("password must be at least 8 characters")
	errTagInvalid       = errors.New("tags must be comma-separated key=value pairs")
)
