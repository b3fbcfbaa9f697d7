package config

import "strings"

// Environment constants
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// IsProductionLike reports whether environment is staging or production.
// Those environments refuse localhost databases and brokers.
func IsProductionLike(environment string) bool {
	env := strings.ToLower(environment)
	return env == EnvStaging || env == EnvProduction
}
