package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daryltucker/cmdbench/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonConfig = `{
  "task_groups": [
    {
      "cleanup_command": [],
      "initialization_command": ["clear"],
      "name": "Greeting",
      "tasks": [
        {
          "command": ["echo", "Hello World!"],
          "repetition_count": 2,
          "setup_command": [],
          "tear_down_command": ["rm", "-f", "/tmp/x"]
        }
      ]
    }
  ]
}`

const yamlConfig = `task_groups:
  - name: Greeting
    initialization_command: [clear]
    tasks:
      - command: [echo, Hello World!]
        repetition_count: 2
        tear_down_command: [rm, -f, /tmp/x]
`

const hclConfig = `task_group "Greeting" {
  initialization_command = ["clear"]

  task {
    command           = ["echo", "Hello World!"]
    repetition_count  = 2
    tear_down_command = ["rm", "-f", "/tmp/x"]
  }
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{file: "bench.json", content: jsonConfig},
		{file: "bench.yaml", content: yamlConfig},
		{file: "bench.yml", content: yamlConfig},
		{file: "bench.hcl", content: hclConfig},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)
			require.Len(t, cfg.TaskGroups, 1)

			group := cfg.TaskGroups[0]
			assert.Equal(t, "Greeting", group.Name)
			assert.Equal(t, []string{"clear"}, group.InitializationCommand)
			assert.True(t, model.IsHelperAbsent(group.CleanupCommand))
			require.Len(t, group.Tasks, 1)

			task := group.Tasks[0]
			assert.Equal(t, []string{"echo", "Hello World!"}, task.Command)
			assert.Equal(t, 2, task.RepetitionCount)
			assert.True(t, model.IsHelperAbsent(task.SetupCommand))
			assert.Equal(t, []string{"rm", "-f", "/tmp/x"}, task.TearDownCommand)
		})
	}
}

func TestLoad_HCLEmptyGroupName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bench.hcl", `task_group "" {
  task {
    command          = ["true"]
    repetition_count = 1
  }
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.TaskGroups, 1)
	assert.Equal(t, "", cfg.TaskGroups[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "bad.json", `{"task_groups": [`))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("unknown json field", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "typo.json", `{"task_group": []}`))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "typo.yaml", `task_groups:
  - name: G
    tasks:
      - command: ["true"]
        repetitions: 3
`))
		assert.ErrorContains(t, err, "failed to parse config file")
		assert.ErrorContains(t, err, "repetitions")
	})

	t.Run("invalid hcl", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "bad.hcl", `task_group "x" {`))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("hcl task without command", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "nocmd.hcl", `task_group "x" {
  task {
    repetition_count = 1
  }
}
`))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("empty measured command", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "empty.yaml", `task_groups:
  - name: G
    tasks:
      - command: []
        repetition_count: 1
`))
		assert.ErrorContains(t, err, "invalid config file")
		assert.ErrorContains(t, err, "command must name an executable")
	})
}

func TestLoad_DefaultSearch(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load("")
	assert.ErrorIs(t, err, ErrNoConfig)

	writeFile(t, dir, "cmdbench.yaml", yamlConfig)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Greeting", cfg.TaskGroups[0].Name)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, t.TempDir(), "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.TaskGroups)
}

func TestValidate(t *testing.T) {
	cfg := &model.Config{TaskGroups: []model.TaskGroup{
		{
			Name: "ok",
			Tasks: []model.Task{
				{Command: []string{"true"}, RepetitionCount: 0, SetupCommand: []string{""}},
			},
		},
		{
			Name: "bad",
			Tasks: []model.Task{
				{Command: nil, RepetitionCount: 1},
				{Command: []string{"", "x"}, RepetitionCount: 1},
				{Command: []string{"true"}, RepetitionCount: -1},
			},
		},
	}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, `task_groups[1] ("bad") tasks[0]: command must name an executable`)
	assert.ErrorContains(t, err, `task_groups[1] ("bad") tasks[1]: command must name an executable`)
	assert.ErrorContains(t, err, `task_groups[1] ("bad") tasks[2]: repetition_count must not be negative, got -1`)
	assert.NotContains(t, err.Error(), "task_groups[0]")

	assert.NoError(t, Validate(&model.Config{}))
}

func TestPlannedRuns(t *testing.T) {
	cfg := &model.Config{TaskGroups: []model.TaskGroup{
		{Tasks: []model.Task{{RepetitionCount: 3}, {RepetitionCount: 0}}},
		{Tasks: []model.Task{{RepetitionCount: 2}}},
	}}
	assert.Equal(t, 5, PlannedRuns(cfg))
}
