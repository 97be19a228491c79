package domain

import (
	"fmt"
	"strings"
)

// Status describes an app's deployment lifecycle stage.
type Status string

const (
	StatusDevelopment Status = "development"
	StatusStaging     Status = "staging"
	StatusProduction  Status = "production"
	StatusArchived    Status = "archived"
)

// Statuses lists all statuses in menu/prompt order.
func Statuses() []Status {
	return []Status{StatusDevelopment, StatusStaging, StatusProduction, StatusArchived}
}

// ExportOrder is the status grouping order used by the Markdown export.
func ExportOrder() []Status {
	return []Status{StatusProduction, StatusStaging, StatusDevelopment, StatusArchived}
}

// ParseStatus validates a user-supplied status value.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q (expected one of: development, staging, production, archived)", s)
	}
	return status, nil
}

// Valid reports whether the status is one of the four known values.
func (s Status) Valid() bool {
	switch s {
	case StatusDevelopment, StatusStaging, StatusProduction, StatusArchived:
		return true
	}
	return false
}

// Title returns the status with its first letter capitalized, for display.
func (s Status) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Environment labels one of the four recognized URL slots.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
	EnvOther       Environment = "other"
)

// Environments lists the URL slots in prompt/display order.
func Environments() []Environment {
	return []Environment{EnvDevelopment, EnvStaging, EnvProduction, EnvOther}
}

// Title returns the environment label capitalized, for display.
func (e Environment) Title() string {
	if e == "" {
		return ""
	}
	return strings.ToUpper(string(e[:1])) + string(e[1:])
}
