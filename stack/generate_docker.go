package stack

import (
	"context"
	"fmt"
	"regexp"
)

// imageNamePattern accepts registry/repository:tag style references.
var imageNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:[._/-][a-z0-9]+)*(?::[A-Za-z0-9._-]+)?$`)

// DefaultDockerImage is used when no image option is supplied.
const DefaultDockerImage = "mcpstack:latest"

// dockerGenerator emits a Claude-compatible mcpServers entry that boots the
// stack inside a container instead of a local process.
type dockerGenerator struct{}

func (g *dockerGenerator) ID() string { return "docker" }

func (g *dockerGenerator) Generate(ctx context.Context, s *Stack, options *GenerateOptions) (*Artifact, error) {
	opts := options.normalize()
	image := opts.Image
	if image == "" {
		image = DefaultDockerImage
	}
	if !imageNamePattern.MatchString(image) {
		return nil, fmt.Errorf("invalid docker image name %q", image)
	}

	args := []string{"run", "-i", "--rm"}
	for _, volume := range opts.Volumes {
		args = append(args, "-v", volume)
	}
	for _, port := range opts.Ports {
		args = append(args, "-p", port)
	}
	if opts.Network != "" {
		args = append(args, "--network", opts.Network)
	}
	args = append(args, opts.ExtraDockerArgs...)
	args = append(args, image)

	server := map[string]interface{}{
		"command": "docker",
		"args":    args,
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
	}
	return artifact, nil
}
