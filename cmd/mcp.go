package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/agentic-research/afstext/clientdata"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp [reply.json]",
	Short: "Serve a reply's client data over MCP stdio",
	Long: `Loads a reply file and exposes its client data to MCP clients through two
tools: list_client_data enumerates the payloads, get_text renders the text of
one payload (optionally at a locator).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadManager(args[0])
		if err != nil {
			return err
		}
		s := newMCPServer(mgr, cfg.RenderOptions())
		logger.Info("serving client data over stdio", "reply", args[0], "payloads", mgr.Len())
		return server.ServeStdio(s)
	},
}

func newMCPServer(mgr *clientdata.Manager, opts *clientdata.RenderOptions) *server.MCPServer {
	s := server.NewMCPServer(
		"afstext",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	listTool := mcp.NewTool("list_client_data",
		mcp.WithDescription("List the client data payloads of the loaded reply: id, mime type and whether highlight markup was detected."),
	)
	s.AddTool(listTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type entry struct {
			ID          string `json:"id"`
			MimeType    string `json:"mimeType"`
			Highlighted bool   `json:"highlighted,omitempty"`
		}
		entries := make([]entry, 0, mgr.Len())
		for _, id := range mgr.IDs() {
			ex, err := mgr.Get(id)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			e := entry{ID: ex.ID(), MimeType: ex.MimeType()}
			if x, ok := ex.(*clientdata.XMLExtractor); ok {
				e.Highlighted = x.HasHighlight()
			}
			entries = append(entries, e)
		}
		out, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("marshal listing: %w", err)
		}
		return mcp.NewToolResultText(string(out)), nil
	})

	getTool := mcp.NewTool("get_text",
		mcp.WithDescription("Render the display text of one client data payload, resolving highlight markers."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Client data id"),
		),
		mcp.WithString("locator",
			mcp.Description("XPath expression for XML payloads, field name or $-prefixed JSONPath for JSON ones. Omit to render the whole payload."),
		),
	)
	s.AddTool(getTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var text string
		if _, ok := req.GetArguments()["locator"]; ok {
			text, err = mgr.TextAt(id, req.GetString("locator", ""), opts)
		} else {
			text, err = mgr.Text(id, opts)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})

	return s
}
