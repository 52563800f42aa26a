// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// The loaded value is returned to the caller explicitly; there is no
// process-global configuration state.
package config
