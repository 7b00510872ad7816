// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the
// first source providing a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path taken from -c / -config or CONFIG)
//
// Defaults are applied to fields still unset after merging. The main entry
// point is [GetStructuredConfig].
package config
