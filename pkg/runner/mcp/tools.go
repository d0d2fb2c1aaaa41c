package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListGoalsTool(srv, svc)
	registerAddGoalTool(srv, svc)
	registerUpdateGoalTool(srv, svc)
	registerDeleteGoalTool(srv, svc)
	registerElapsedTool(srv, svc)
	registerGetFontSizeTool(srv, svc)
	registerSetFontSizeTool(srv, svc)
	registerEncouragementTool(srv, svc)
}

const dateHelp = "Start date as YYYY-MM-DD or DD-MM-YYYY, or today or yesterday."

func registerListGoalsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_goals",
		mcp.WithDescription("List every goal, oldest first, with how long ago each started and an encouragement."),
	)
	srv.AddTool(tool, listGoalsHandler(svc))
}

func listGoalsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rows, err := svc.ListGoals(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"goals": rows,
			"count": len(rows),
		})
	}
}

func registerAddGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_goal",
		mcp.WithDescription("Add a goal. Names are unique, ignoring case."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the goal."),
		),
		mcp.WithString("date",
			mcp.Description(dateHelp+" Defaults to today."),
		),
	)
	srv.AddTool(tool, addGoalHandler(svc))
}

func addGoalHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name string `json:"name"`
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := svc.AddGoal(ctx, args.Name, args.Date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func registerUpdateGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_goal",
		mcp.WithDescription("Rename a goal or change its start date. Omitted fields keep their value."),
		mcp.WithNumber("number",
			mcp.Required(),
			mcp.Description("1-based position of the goal as returned by list_goals."),
		),
		mcp.WithString("name",
			mcp.Description("New name."),
		),
		mcp.WithString("date",
			mcp.Description("New start date, same formats as add_goal."),
		),
	)
	srv.AddTool(tool, updateGoalHandler(svc))
}

func updateGoalHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number, err := request.RequireInt("number")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name := request.GetString("name", "")
		date := request.GetString("date", "")
		if strings.TrimSpace(name) == "" && strings.TrimSpace(date) == "" {
			return mcp.NewToolResultError("nothing to change, give a name or a date"), nil
		}
		res, err := svc.UpdateGoal(ctx, number, name, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func registerDeleteGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_goal",
		mcp.WithDescription("Delete a goal."),
		mcp.WithNumber("number",
			mcp.Required(),
			mcp.Description("1-based position of the goal as returned by list_goals."),
		),
		mcp.WithDestructiveHintAnnotation(true),
	)
	srv.AddTool(tool, deleteGoalHandler(svc))
}

func deleteGoalHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number, err := request.RequireInt("number")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.DeleteGoal(ctx, number)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func registerElapsedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"elapsed",
		mcp.WithDescription("Describe how long ago a YYYY-MM-DD date was, counting years as 365 days."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date as YYYY-MM-DD."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	srv.AddTool(tool, elapsedHandler(svc))
}

func elapsedHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.Elapsed(ctx, strings.TrimSpace(date))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func registerGetFontSizeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_font_size",
		mcp.WithDescription("Get the display font size."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := svc.FontSize(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerSetFontSizeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_font_size",
		mcp.WithDescription("Set the display font size: 12 to 24 in steps of 2."),
		mcp.WithNumber("size",
			mcp.Required(),
			mcp.Description("New font size."),
		),
	)
	srv.AddTool(tool, setFontSizeHandler(svc))
}

func setFontSizeHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		size, err := request.RequireInt("size")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.SetFontSize(ctx, size)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func registerEncouragementTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"random_encouragement",
		mcp.WithDescription("Get a random encouraging phrase."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		phrase, err := svc.Encouragement(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(phrase), nil
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
