package config

import (
	"fmt"

	"github.com/daryltucker/cmdbench/internal/model"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclConfigFile is the top-level structure of an HCL benchmark file:
//
//	task_group "Greeting" {
//	  initialization_command = ["clear"]
//	  task {
//	    command          = ["echo", "Hello World!"]
//	    repetition_count = 1
//	  }
//	}
type hclConfigFile struct {
	TaskGroups []*hclTaskGroup `hcl:"task_group,block"`
}

type hclTaskGroup struct {
	Name                  string     `hcl:"name,label"`
	InitializationCommand []string   `hcl:"initialization_command,optional"`
	CleanupCommand        []string   `hcl:"cleanup_command,optional"`
	Tasks                 []*hclTask `hcl:"task,block"`
}

type hclTask struct {
	SetupCommand    []string `hcl:"setup_command,optional"`
	Command         []string `hcl:"command"`
	RepetitionCount int      `hcl:"repetition_count,optional"`
	TearDownCommand []string `hcl:"tear_down_command,optional"`
}

// decodeHCL parses an HCL document into the shared model.
func decodeHCL(data []byte, filename string) (*model.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	cfg := &model.Config{TaskGroups: make([]model.TaskGroup, 0, len(parsed.TaskGroups))}
	for _, g := range parsed.TaskGroups {
		group := model.TaskGroup{
			Name:                  g.Name,
			InitializationCommand: g.InitializationCommand,
			CleanupCommand:        g.CleanupCommand,
			Tasks:                 make([]model.Task, 0, len(g.Tasks)),
		}
		for _, t := range g.Tasks {
			group.Tasks = append(group.Tasks, model.Task{
				SetupCommand:    t.SetupCommand,
				Command:         t.Command,
				RepetitionCount: t.RepetitionCount,
				TearDownCommand: t.TearDownCommand,
			})
		}
		cfg.TaskGroups = append(cfg.TaskGroups, group)
	}

	return cfg, nil
}

// encodeHCL renders cfg in the block layout decodeHCL reads.
func encodeHCL(cfg *model.Config) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, group := range cfg.TaskGroups {
		if i > 0 {
			root.AppendNewline()
		}
		gb := root.AppendNewBlock("task_group", []string{group.Name}).Body()
		gb.SetAttributeValue("initialization_command", argvValue(group.InitializationCommand))
		gb.SetAttributeValue("cleanup_command", argvValue(group.CleanupCommand))

		for _, task := range group.Tasks {
			gb.AppendNewline()
			tb := gb.AppendNewBlock("task", nil).Body()
			tb.SetAttributeValue("setup_command", argvValue(task.SetupCommand))
			tb.SetAttributeValue("command", argvValue(task.Command))
			tb.SetAttributeValue("repetition_count", cty.NumberIntVal(int64(task.RepetitionCount)))
			tb.SetAttributeValue("tear_down_command", argvValue(task.TearDownCommand))
		}
	}

	return f.Bytes()
}

// argvValue converts an argv slice to a cty list; cty.ListVal panics on empty input.
func argvValue(argv []string) cty.Value {
	if len(argv) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(argv))
	for _, a := range argv {
		vals = append(vals, cty.StringVal(a))
	}
	return cty.ListVal(vals)
}
