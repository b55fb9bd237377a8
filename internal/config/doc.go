// Package config provides configuration loading, merging, and validation
// for the sync client.
//
// Configuration is assembled from several sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults ([Defaults])
//
// The main entry point is [GetClientConfig].
package config
