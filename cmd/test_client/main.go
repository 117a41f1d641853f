package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:3000/mcp/stream", "MCP stream endpoint")
	company := flag.String("company", "HCA", "Company to research")
	location := flag.String("location", "Texas", "Optional location")
	spreadsheetID := flag.String("spreadsheet", "", "Spreadsheet ID; when set, intelligence_export is exercised too")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "staffing-intel-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testCompanyIntelligence(ctx, session, *company, *location)
	if *spreadsheetID != "" {
		testIntelligenceExport(ctx, session, *company, *location, *spreadsheetID)
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testCompanyIntelligence(ctx context.Context, session *mcp.ClientSession, company, location string) {
	fmt.Println("\nTEST: company_intelligence")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "company_intelligence",
		Arguments: map[string]any{
			"company":  company,
			"location": location,
		},
	})
	if err != nil {
		log.Printf("company_intelligence failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("company_intelligence passed")
}

func testIntelligenceExport(ctx context.Context, session *mcp.ClientSession, company, location, spreadsheetID string) {
	fmt.Println("\nTEST: intelligence_export")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "intelligence_export",
		Arguments: map[string]any{
			"company":        company,
			"location":       location,
			"spreadsheet_id": spreadsheetID,
		},
	})
	if err != nil {
		log.Printf("intelligence_export failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("intelligence_export passed")
}

func printResult(res *mcp.CallToolResult) {
	if res.IsError {
		fmt.Println("tool reported an error:")
	}
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
