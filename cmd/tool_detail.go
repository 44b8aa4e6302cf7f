package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// ToolCmd prints metadata and input schemas for a single tool type.  The
// tool is instantiated with empty params, so only statically declared
// actions are shown.
type ToolCmd struct {
	Name string `short:"n" long:"name" positional-arg-name:"name" description:"Tool type identifier" required:"yes"`
	JSON bool   `long:"json" description:"Print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	if _, err := configSingleton(); err != nil {
		return err
	}
	constructor, err := tool.Registry().Resolve(c.Name)
	if err != nil {
		return err
	}
	instance, err := constructor(nil)
	if err != nil {
		return fmt.Errorf("failed to instantiate tool %q: %w", c.Name, err)
	}

	type actionInfo struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		InputSchema interface{} `json:"inputSchema"`
	}
	detail := struct {
		Type    string       `json:"type"`
		Actions []actionInfo `json:"actions"`
	}{Type: c.Name}
	for _, a := range instance.Actions() {
		detail.Actions = append(detail.Actions, actionInfo{a.Name, a.Description, a.InputSchema})
	}

	if c.JSON {
		data, _ := json.MarshalIndent(detail, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Type : %s\n", detail.Type)
	for _, a := range detail.Actions {
		fmt.Printf("  %s\t%s\n", a.Name, a.Description)
		js, _ := json.MarshalIndent(a.InputSchema, "", "  ")
		fmt.Printf("  schema: %s\n", string(js))
	}
	return nil
}
