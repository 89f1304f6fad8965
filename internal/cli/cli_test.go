package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Project-Sylos/Mimic/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateTable(t *testing.T) {
	out, err := run(t, "generate", "--seed", "abc", "--batch-size", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
	assert.True(t, strings.HasPrefix(lines[3], "3 "))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "fingerprint "))
}

func TestGenerateJSONIsReproducible(t *testing.T) {
	args := []string{"generate", "--region", "Poland", "--seed", "42", "--page", "2", "--batch-size", "4", "--json"}

	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)

	var a, b sdk.Batch
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	require.Len(t, a.Records, 4)
	assert.Equal(t, "Poland", a.Region)
	assert.Equal(t, 2, a.Page)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	for i := range a.Records {
		assert.Equal(t, a.Records[i].Name, b.Records[i].Name)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing seed", args: []string{"generate"}, want: "seed"},
		{name: "unknown region", args: []string{"generate", "--seed", "a", "--region", "Atlantis"}, want: "UnknownRegion"},
		{name: "invalid seed", args: []string{"generate", "--seed", "%%"}, want: "InvalidSeed"},
		{name: "zero batch size", args: []string{"generate", "--seed", "a", "--batch-size", "0"}, want: "InvalidRequest"},
		{name: "missing config file", args: []string{"generate", "--seed", "a", "--config", "/nonexistent/mimic.json"}, want: "configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegions(t *testing.T) {
	out, err := run(t, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "USA")
	assert.Contains(t, out, "Poland")
	assert.Contains(t, out, "Georgia")

	out, err = run(t, "regions", "--json")
	require.NoError(t, err)
	var regions []sdk.RegionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &regions))
	assert.Len(t, regions, 3)
}
