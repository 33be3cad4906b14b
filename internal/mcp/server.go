package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/config"
	"github.com/jcdickinson/llmsgen/internal/summary"
	"github.com/jcdickinson/llmsgen/internal/template"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:embed instructions.md
var instructions string

// ManifestURI is the resource URI the manifest is published under.
const ManifestURI = "llms://manifest"

type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
	gen       *summary.Generator
}

func NewServer(cfg *config.Config, gen *summary.Generator) (*Server, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}

	s := &Server{cfg: cfg, gen: gen}

	mcpServer := server.NewMCPServer(
		"llmsgen",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s, nil
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("resolve_reference",
			mcp.WithDescription("Resolve a symbol reference (\"container!\" or \"container!member.path\") to its documentation URL."),
			mcp.WithString("ref",
				mcp.Description("Reference string, e.g. \"lib!Client.send\""),
				mcp.Required(),
			),
		),
		s.handleResolve,
	)

	mcpServer.AddTool(
		mcp.NewTool("render_slot",
			mcp.WithDescription("Render one manifest fragment: header, sections, declarations, quickReference or section:<name>."),
			mcp.WithString("slot",
				mcp.Description("Slot name, e.g. \"header\" or \"section:Guides\""),
				mcp.Required(),
			),
		),
		s.handleRenderSlot,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	name := s.cfg.Output
	if name == "" {
		name = summary.DefaultOutput
	}
	mcpServer.AddResource(
		mcp.NewResource(ManifestURI, name,
			mcp.WithResourceDescription("Summary manifest for the documentation project"),
			mcp.WithMIMEType("text/markdown"),
		),
		s.handleReadManifest,
	)
}

func (s *Server) handleResolve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	ref, _ := args["ref"].(string)
	if ref == "" {
		return mcp.NewToolResultError("missing required parameter: ref"), nil
	}

	url, err := s.gen.Resolver().Resolve(ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(url), nil
}

func (s *Server) handleRenderSlot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	slot, _ := args["slot"].(string)
	slot = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(slot, "{{"), "}}"))
	if slot == "" {
		return mcp.NewToolResultError("missing required parameter: slot"), nil
	}

	b, err := s.gen.Build()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("building manifest: %v", err)), nil
	}
	return mcp.NewToolResultText(template.Apply("{{"+slot+"}}", b)), nil
}

func (s *Server) handleReadManifest(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	b, err := s.gen.Build()
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     s.gen.Render(b),
		},
	}, nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
