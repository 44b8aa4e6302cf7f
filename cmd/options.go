package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"stack configuration YAML/JSON path"`

	Build       *BuildCmd       `command:"build"        description:"Compose a pipeline and produce a host configuration artifact"`
	Serve       *ServeCmd       `command:"serve"        description:"Load a pipeline, build it and expose its actions over MCP"`
	Pipeline    *PipelineCmd    `command:"pipeline"     description:"Compose or extend a persisted pipeline with a tool"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tool types"`
	ListPresets *ListPresetsCmd `command:"list-presets" description:"List all registered presets"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one tool type"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "build":
		o.Build = &BuildCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	case "pipeline":
		o.Pipeline = &PipelineCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-presets":
		o.ListPresets = &ListPresetsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	}
}
