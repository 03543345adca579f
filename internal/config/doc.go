// Package config defines the deployment configuration and its loading rules.
//
// Configuration comes from a YAML file (mentorctl.yaml by default) for
// resource naming and runtime options, and from the process environment
// (optionally seeded from an env file) for the application settings that
// are pushed to the provider. Credential values never live in the YAML
// file or in source.
package config
