package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	cfg := Sample()
	require.Len(t, cfg.TaskGroups, 1)
	assert.Equal(t, "Greeting", cfg.TaskGroups[0].Name)
	assert.Equal(t, []string{"clear"}, cfg.TaskGroups[0].InitializationCommand)
	require.Len(t, cfg.TaskGroups[0].Tasks, 1)
	assert.Equal(t, []string{"echo", "Hello World!"}, cfg.TaskGroups[0].Tasks[0].Command)
	assert.Equal(t, 1, cfg.TaskGroups[0].Tasks[0].RepetitionCount)
	assert.NoError(t, Validate(cfg))
}

func TestWriteSample_LoadsBack(t *testing.T) {
	for _, name := range []string{"sample.json", "sample.yaml", "sample.hcl"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteSample(path))

			cfg, err := Load(path)
			require.NoError(t, err)

			want := Sample().TaskGroups[0]
			got := cfg.TaskGroups[0]
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.InitializationCommand, got.InitializationCommand)
			assert.Empty(t, got.CleanupCommand)
			assert.Equal(t, want.Tasks[0].Command, got.Tasks[0].Command)
			assert.Equal(t, want.Tasks[0].RepetitionCount, got.Tasks[0].RepetitionCount)
		})
	}
}

func TestWriteSample_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmdbench.json")
	require.NoError(t, WriteSample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"initialization_command": [`)
	assert.Contains(t, string(data), `"repetition_count": 1`)
	assert.Contains(t, string(data), `"cleanup_command": []`)
}

func TestWriteSample_HCLLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmdbench.hcl")
	require.NoError(t, WriteSample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `task_group "Greeting" {`)
	assert.Contains(t, string(data), `task {`)
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := Marshal(Sample(), Format("toml"))
	assert.ErrorContains(t, err, `unsupported config format "toml"`)
}
