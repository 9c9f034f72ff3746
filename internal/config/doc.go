// Package config loads tool configuration from a .pydoccheck.yml file.
//
// All fields are optional; Default supplies the values used when the file or
// a field is absent. Command-line flags overlay the loaded configuration.
package config
