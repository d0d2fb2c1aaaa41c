package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/goals/pkg/app"
)

// Runner coordinates MCP server startup. The server speaks over stdio only.
type Runner struct {
	Service *app.Service
	Name    string
	Version string
}

// NewServer builds the MCP server with every goal tool and resource
// registered.
func NewServer(svc *Service, name, version string) *server.MCPServer {
	if name == "" {
		name = "goals"
	}
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Track goals and how long ago each started. Goals are addressed by their 1-based position in list_goals."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do serves until stdin closes or the process is signalled.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a goal store")
	}
	srv := NewServer(NewService(r.Service), r.Name, r.Version)
	return server.ServeStdio(srv)
}
