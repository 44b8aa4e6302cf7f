package cmd

import (
	"fmt"

	"github.com/MCP-Pipeline/MCPStack/stack"
)

// ListPresetsCmd prints every registered preset identifier.
type ListPresetsCmd struct{}

func (c *ListPresetsCmd) Execute(_ []string) error {
	if _, err := configSingleton(); err != nil {
		return err
	}
	for _, id := range stack.Presets().List() {
		fmt.Println(id)
	}
	return nil
}
