// Package env contains all about environment variables, that can be used by current application.
package env

import "os"

type envVariable string

const (
	LogLevel envVariable = "LOG_LEVEL" // logging level

	ForceColors envVariable = "FORCE_COLOR" // force colored output, <https://force-color.org/>
	NoColors    envVariable = "NO_COLOR"    // disable colored output, <https://no-color.org/>
	Term        envVariable = "TERM"        // terminal type

	EnvFile      envVariable = "FILEMAGIC_ENV_FILE"      // path to the dotenv file
	PrefixSize   envVariable = "FILEMAGIC_PREFIX_SIZE"   // amount of leading bytes to read
	OutputFormat envVariable = "FILEMAGIC_OUTPUT_FORMAT" // report output format
)

// String returns environment variable name in the string representation.
func (e envVariable) String() string { return string(e) }

// Lookup retrieves the value of the environment variable. If the variable is present in the environment the value
// (which may be empty) is returned and the boolean is true. Otherwise the returned value will be empty and the
// boolean will be false.
func (e envVariable) Lookup() (string, bool) { return os.LookupEnv(string(e)) }
