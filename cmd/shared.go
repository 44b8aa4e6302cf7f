package cmd

import (
	"context"
	"os"
	"sync"

	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
	"github.com/MCP-Pipeline/MCPStack/stack"
	"github.com/MCP-Pipeline/MCPStack/stack/config"
)

var (
	cfgPath string

	cfgOnce sync.Once
	cfgInst *config.Config
	cfgErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// configuration singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// configSingleton loads the configuration once and reuses the instance across
// sub-commands within the same CLI invocation.  Registry discovery runs here
// as well so that every command observes the same plugin set.
func configSingleton() (*config.Config, error) {
	cfgOnce.Do(func() {
		if cfgErr = stack.Discover(); cfgErr != nil {
			return
		}
		if cfgPath != "" {
			cfgInst, cfgErr = config.Load(context.Background(), cfgPath)
		} else {
			cfgInst = config.New(config.WithEnvVars(envFromProcess()))
		}
		if cfgErr == nil {
			logging.Init(cfgInst.LogLevel, os.Stderr)
		}
	})
	return cfgInst, cfgErr
}

// envFromProcess snapshots MCPSTACK_* variables from the process environment
// so that ad-hoc CLI runs inherit the operator's settings without dragging
// the whole environ into persisted pipelines.
func envFromProcess() map[string]string {
	env := map[string]string{}
	for _, key := range []string{stack.EnvConfigPath, stack.EnvCommand, stack.EnvArgs, stack.EnvCwd, config.DataDirEnvKey} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env
}
