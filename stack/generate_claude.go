package stack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/viant/afs"

	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
)

// claudeGenerator produces a Claude Desktop mcpServers entry.  Without an
// explicit save path the entry is merged into the platform configuration
// file, preserving servers registered by other applications.
type claudeGenerator struct{}

func (g *claudeGenerator) ID() string { return "claude" }

func (g *claudeGenerator) Generate(ctx context.Context, s *Stack, options *GenerateOptions) (*Artifact, error) {
	opts := options.normalize()
	command := resolveCommand(s, opts)
	cwd := resolveCwd(s, opts)
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("invalid command %q: not found on PATH", command)
	}
	if info, err := os.Stat(cwd); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid cwd %q: directory does not exist", cwd)
	}

	server := map[string]interface{}{
		"command": command,
		"args":    resolveArgs(s, opts),
		"cwd":     cwd,
		"env":     hostEnv(s, opts),
	}
	artifact := &Artifact{
		Backend: g.ID(),
		Payload: map[string]interface{}{
			"mcpServers": map[string]interface{}{opts.ServerName: server},
		},
	}

	if opts.SavePath != "" {
		if err := artifact.Save(ctx, opts.SavePath); err != nil {
			return nil, err
		}
		return artifact, nil
	}
	if path := claudeConfigPath(); path != "" {
		if err := mergeClaudeConfig(ctx, path, opts.ServerName, server); err != nil {
			return nil, err
		}
	}
	return artifact, nil
}

// claudeConfigPath returns the first Claude Desktop configuration location
// whose parent directory exists, or empty when the host is not installed.
func claudeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"),
		filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json"),
		filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(filepath.Dir(candidate)); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

// mergeClaudeConfig updates the mcpServers section of an existing Claude
// Desktop configuration, leaving unrelated entries intact.
func mergeClaudeConfig(ctx context.Context, path, serverName string, server map[string]interface{}) error {
	fs := afs.New()
	existing := map[string]interface{}{}
	if ok, _ := fs.Exists(ctx, path); ok {
		data, err := fs.DownloadWithURL(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to read claude config %q: %w", path, err)
		}
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("failed to parse claude config %q: %w", path, err)
		}
	}
	servers, _ := existing["mcpServers"].(map[string]interface{})
	if servers == nil {
		servers = map[string]interface{}{}
	}
	servers[serverName] = server
	existing["mcpServers"] = servers

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	if err := fs.Upload(ctx, path, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write claude config %q: %w", path, err)
	}
	logging.Info("hostcfg", "merged server %q into %s", serverName, path)
	return nil
}
