// Package config loads runtime configuration for the bioadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the platform API
//	-t int      request timeout (seconds)
//	-p int      directory page size
//	-k          skip TLS certificate verification
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "https://10.0.0.5",
//	  "request_timeout": "15s",
//	  "page_size": 50,
//	  "insecure_skip_verify": true
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
