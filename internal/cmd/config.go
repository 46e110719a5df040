package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/spf13/viper"
)

// cfgDirEnv points at the configuration root on Windows installs, where
// there is no fixed /etc equivalent.
const cfgDirEnv = "FLEETMGR_CFG_DIR"

// resolveTrustFile determines the trust-store file path.
// Order:
// 1. --trust-file flag
// 2. Env: TRUSTCTL_TRUST_FILE
// 3. Config "trust_file" (viper)
// 4. Platform default
// Env and config values are interpolated, including ${VAR:-default}
// syntax, so shared configs can reference per-host locations.
func resolveTrustFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if path := os.Getenv("TRUSTCTL_TRUST_FILE"); path != "" {
		return interpolate(path)
	}

	if path := viper.GetString("trust_file"); path != "" {
		return interpolate(path)
	}

	return defaultTrustFile()
}

func defaultTrustFile() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv(cfgDirEnv), "fleet-agent", "agent-trust.json")
	}
	return "/etc/fleet-agent/agent-trust.json"
}

// reVarDefault matches ${VAR:-default}.
var reVarDefault = regexp.MustCompile(`\$\{([^}:]+):-([^}]*)\}`)

// interpolate expands environment variable references in s:
//   - ${VAR}           → value of VAR, empty if unset
//   - $VAR             → value of VAR, empty if unset
//   - ${VAR:-default}  → value of VAR if set and non-empty, else "default"
func interpolate(s string) string {
	s = reVarDefault.ReplaceAllStringFunc(s, func(match string) string {
		parts := reVarDefault.FindStringSubmatch(match)
		name, def := parts[1], parts[2]
		if val := os.Getenv(name); val != "" {
			return val
		}
		return def
	})
	return os.Expand(s, func(name string) string {
		return os.Getenv(name)
	})
}
