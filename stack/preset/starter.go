package preset

import (
	stack "github.com/MCP-Pipeline/MCPStack/stack"
	"github.com/MCP-Pipeline/MCPStack/stack/config"
	"github.com/MCP-Pipeline/MCPStack/stack/tools/echo"
)

// Starter produces the smallest useful pipeline: one echo tool.  It serves as
// the template for writing presets and as the default of the CLI run path.
func Starter(cfg *config.Config, options map[string]interface{}) (*stack.Stack, error) {
	if cfg == nil {
		cfg = config.New()
	}
	suffix, _ := options["suffix"].(string)
	greeting, _ := options["greeting"].(string)
	s := stack.New(cfg)
	return s.WithTool(echo.NewWithParams(echo.Params{Suffix: suffix, Greeting: greeting}))
}

func init() {
	stack.ProvidePreset("starter", Starter)
}
