// Package config loads and merges application configuration from a .env
// file, environment variables, command-line flags, and an optional JSON
// file, in that order of increasing priority for the file and decreasing
// for the rest (env wins over flags, flags win over JSON).
//
// The merged [StructuredConfig] is then narrowed into a [ServerConfig] or a
// [ClientConfig] view, each validated for the fields its binary actually
// needs.
package config
