package mcp

import "github.com/mark3labs/mcp-go/mcp"

func analyzeComponentTool() mcp.Tool {
	return mcp.NewTool("analyze_component",
		mcp.WithDescription("Run the full analysis pipeline on a component and return reconciled metadata. Without element_id, analyzes every component root in the document."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("Path to the exported design document (JSON)"),
		),
		mcp.WithString("element_id",
			mcp.Description("ID of the component to analyze; omit to analyze all component roots"),
		),
	)
}

func extractTokensTool() mcp.Tool {
	return mcp.NewTool("extract_tokens",
		mcp.WithDescription("Extract design token usage (bound and hard-coded) from an element subtree and return the per-category summary."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("Path to the exported design document (JSON)"),
		),
		mcp.WithString("element_id",
			mcp.Description("ID of the subtree root; omit to extract from the document root"),
		),
	)
}

func namingIssuesTool() mcp.Tool {
	return mcp.NewTool("naming_issues",
		mcp.WithDescription("Report generic and numbered layer names with semantic rename suggestions."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("Path to the exported design document (JSON)"),
		),
		mcp.WithString("element_id",
			mcp.Description("ID of the subtree root; omit to analyze the document root"),
		),
	)
}

func recommendPropertiesTool() mcp.Tool {
	return mcp.NewTool("recommend_properties",
		mcp.WithDescription("Propose missing component properties from the family catalog, filtered against properties the component already declares."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("Path to the exported design document (JSON)"),
		),
		mcp.WithString("element_id",
			mcp.Required(),
			mcp.Description("ID of the component to inspect"),
		),
	)
}
