package main

// Options is the root command that groups sub-commands. The struct tags are
// interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Check   *CheckCmd   `command:"check" description:"Run a two-phase CORS check against a URL"`
	Serve   *ServeCmd   `command:"serve" description:"Start the HTTP check API"`
	MCP     *MCPCmd     `command:"mcp" description:"Start the MCP tool server"`
	Version *VersionCmd `command:"version" description:"Print version information"`
}

// Init instantiates the sub-command referenced by the first argument so that
// flags.Parse can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "check":
		o.Check = &CheckCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	case "mcp":
		o.MCP = &MCPCmd{}
	case "version":
		o.Version = &VersionCmd{}
	}
}
