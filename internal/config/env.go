package config

import (
	"os"
	"regexp"
)

var envRefRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnv replaces ${VAR} references with the corresponding environment
// variable. Unset references are left untouched so validation can surface
// them in context.
func expandEnv(content []byte) []byte {
	return envRefRegex.ReplaceAllFunc(content, func(match []byte) []byte {
		name := string(envRefRegex.FindSubmatch(match)[1])
		if value, ok := os.LookupEnv(name); ok {
			return []byte(value)
		}
		return match
	})
}
