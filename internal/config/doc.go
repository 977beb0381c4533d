// Package config provides configuration loading, merging, and validation
// facilities for the smscli client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (SMSCLI_ prefix)
//  3. Command-line flags
//  4. Config file, JSON or YAML (selected by extension)
//
// The main entry point is [GetClientConfig].
package config
