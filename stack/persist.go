package stack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"

	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
	"github.com/MCP-Pipeline/MCPStack/stack/config"
)

// Document is the persisted pipeline format: the configuration mapping plus
// the ordered tool sequence.  This is the one on-disk interchange format the
// engine reads and writes; its shape must stay stable across versions.
type Document struct {
	Config *config.Config `json:"config"`
	Tools  []ToolDocument `json:"tools"`
}

// ToolDocument captures one tool instance by type identifier and params.
// Live connection state is never serialized.
type ToolDocument struct {
	Type   string                 `json:"type"`
	Params map[string]interface{} `json:"params"`
}

// Document renders the stack as a persistable pipeline definition.
func (s *Stack) Document() *Document {
	doc := &Document{Config: s.config.Clone()}
	for _, t := range s.tools {
		doc.Tools = append(doc.Tools, ToolDocument{Type: t.TypeID(), Params: t.Params()})
	}
	return doc
}

// Save serializes the pipeline definition to a local path or URL.
func (s *Stack) Save(ctx context.Context, URL string) error {
	data, err := json.MarshalIndent(s.Document(), "", "  ")
	if err != nil {
		return err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, URL, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save pipeline to %q: %w", URL, err)
	}
	logging.Info("stack", "saved pipeline definition to %s", URL)
	return nil
}

// Load reads a pipeline definition, resolves each tool type through the
// registry, reconstructs the instances with their saved params and invokes
// every tool's PostLoad hook in original insertion order.  The result is a
// draft stack behaviorally equivalent to the one that was saved.
func Load(ctx context.Context, URL string, options ...Option) (*Stack, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline %q: %w", URL, err)
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &FormatError{Source: URL, Err: err}
	}
	return FromDocument(ctx, doc, options...)
}

// FromDocument rebuilds a draft stack from an already-decoded pipeline
// definition.
func FromDocument(ctx context.Context, doc *Document, options ...Option) (*Stack, error) {
	s := New(doc.Config, options...)
	var err error
	for _, td := range doc.Tools {
		if s, err = s.WithToolID(td.Type, td.Params); err != nil {
			return nil, err
		}
	}
	for _, t := range s.tools {
		if err := t.PostLoad(ctx); err != nil {
			return nil, fmt.Errorf("post-load of tool %q failed: %w", t.TypeID(), err)
		}
	}
	logging.Info("stack", "loaded pipeline with %d tools", len(s.tools))
	return s, nil
}
