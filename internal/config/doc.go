// Package config provides configuration loading, merging, and validation
// facilities for auth-bridge.
//
// Configuration is assembled from the following sources; for every field the
// first source that sets it wins:
//  1. Environment variables, after a dotenv file (default ".env.local") has
//     been loaded without overriding the process environment
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The resulting [StructuredConfig] also knows how to resolve the auth backend
// base URL from the local/cloud placement settings ([Backend.BaseURL]).
package config
