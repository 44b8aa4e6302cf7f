package cmd

import (
	"fmt"

	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// ListToolsCmd prints every registered tool type, one per line, together with
// its params struct when the plugin registered one.
type ListToolsCmd struct{}

func (c *ListToolsCmd) Execute(_ []string) error {
	if _, err := configSingleton(); err != nil {
		return err
	}
	for _, id := range tool.Registry().List() {
		if pt := tool.ParamsType(id); pt != nil {
			fmt.Printf("%s\t%s\n", id, pt.Type)
			continue
		}
		fmt.Println(id)
	}
	return nil
}
