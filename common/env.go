// Package common provides the environment variable names and defaults
// shared by the cookieparse binary and its commands.
package common

// Environment variable names for configuration.
const (
	// DecoderEnv names the decoder used when --decode is not given.
	DecoderEnv = "COOKIEPARSE_DECODER"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "COOKIEPARSE_DEBUG"

	// LogFileEnv names a file that log lines are appended to.
	LogFileEnv = "COOKIEPARSE_LOG_FILE"
)

// DefaultDecoder is the decoder used when neither --decode nor DecoderEnv
// is set.
const DefaultDecoder = "url"

// DefaultImportDecoder is the decoder import uses unless --decode is given.
// Browser stores keep values in their stored form.
const DefaultImportDecoder = "raw"
