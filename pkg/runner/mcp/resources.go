package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerGoalsResource(srv, svc)
	registerGoalTemplate(srv, svc)
}

func registerGoalsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"goals://goals",
		"Goals",
		mcp.WithResourceDescription("Every goal with its start date and elapsed time."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		rows, err := svc.ListGoals(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"goals": rows,
			"count": len(rows),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerGoalTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"goals://goals/{number}",
		"Goal",
		mcp.WithTemplateDescription("A single goal by its 1-based list position."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		number, err := templateNumber(request.Params.Arguments["number"])
		if err != nil {
			return nil, err
		}
		row, err := svc.GetGoal(ctx, number)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"goal": row})
	})
}

// templateNumber accepts the matched URI variable, which arrives as a string
// or a single-element slice depending on the matcher.
func templateNumber(v any) (int, error) {
	var raw string
	switch t := v.(type) {
	case string:
		raw = t
	case []string:
		if len(t) > 0 {
			raw = t[0]
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("goal number is required")
	}
	return n, nil
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
