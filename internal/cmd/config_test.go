package cmd

import (
	"runtime"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		input string
		want  string
	}{
		{
			name:  "plain ${VAR} set",
			env:   map[string]string{"CFG_ROOT": "/srv/cfg"},
			input: "${CFG_ROOT}/agent-trust.json",
			want:  "/srv/cfg/agent-trust.json",
		},
		{
			name:  "$VAR set",
			env:   map[string]string{"CFG_ROOT": "/srv/cfg"},
			input: "$CFG_ROOT/agent-trust.json",
			want:  "/srv/cfg/agent-trust.json",
		},
		{
			name:  "${VAR:-default} uses default when unset",
			env:   map[string]string{},
			input: "${CFG_ROOT:-/etc/fleet-agent}/agent-trust.json",
			want:  "/etc/fleet-agent/agent-trust.json",
		},
		{
			name:  "${VAR:-default} uses var when set",
			env:   map[string]string{"CFG_ROOT": "/srv/cfg"},
			input: "${CFG_ROOT:-/etc/fleet-agent}/agent-trust.json",
			want:  "/srv/cfg/agent-trust.json",
		},
		{
			name:  "no interpolation",
			env:   map[string]string{},
			input: "/etc/fleet-agent/agent-trust.json",
			want:  "/etc/fleet-agent/agent-trust.json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.want, interpolate(tc.input))
		})
	}
}

func TestResolveTrustFile(t *testing.T) {
	viper.Reset()
	t.Setenv("TRUSTCTL_TRUST_FILE", "")

	// Case 1: platform default
	if runtime.GOOS != "windows" {
		assert.Equal(t, "/etc/fleet-agent/agent-trust.json", resolveTrustFile(""))
	}

	// Case 2: viper config
	viper.Set("trust_file", "/opt/trust.json")
	assert.Equal(t, "/opt/trust.json", resolveTrustFile(""))

	// Case 3: env var beats config
	t.Setenv("TRUSTCTL_TRUST_FILE", "/env/trust.json")
	assert.Equal(t, "/env/trust.json", resolveTrustFile(""))

	// Case 4: flag beats everything
	assert.Equal(t, "/flag/trust.json", resolveTrustFile("/flag/trust.json"))

	viper.Reset()
}

func TestResolveTrustFileInterpolatesConfigValue(t *testing.T) {
	viper.Reset()
	t.Setenv("TRUSTCTL_TRUST_FILE", "")
	t.Setenv("AGENT_STATE_DIR", "/var/lib/agent")

	viper.Set("trust_file", "${AGENT_STATE_DIR}/trust.json")
	assert.Equal(t, "/var/lib/agent/trust.json", resolveTrustFile(""))

	viper.Reset()
}
