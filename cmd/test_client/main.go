package main

import (
	"context"
	"fmt"
	"log"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultEndpoint = "http://localhost:8080/mcp/stream"

func main() {
	ctx := context.Background()

	endpoint := os.Getenv("MCP_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "job-discovery-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	// same identifiers everywhere so the server derives identical metadata
	sessionArgs := map[string]any{
		"user_id":    "test-client-user",
		"session_id": "test-client-session",
		"domain":     "www.google.com",
	}

	cases := []struct {
		name string
		args map[string]any
	}{
		{"keyword", map[string]any{"query": "analyst"}},
		{"single location", map[string]any{
			"query": "Software Engineer",
			"locations": []map[string]any{
				{"name": "1600 Amphitheatre Parkway, Mountain View, CA", "radius_miles": 0.5},
			},
		}},
		{"multiple locations", map[string]any{
			"query": "Analyst",
			"locations": []map[string]any{
				{"name": "Mountain View, CA"},
				{"name": "Sunnyvale, CA"},
			},
		}},
		{"employment types", map[string]any{
			"query":            "Analyst",
			"employment_types": []string{"FULL_TIME", "INTERN"},
		}},
	}

	for _, tc := range cases {
		for k, v := range sessionArgs {
			tc.args[k] = v
		}
		testJobSearch(ctx, session, tc.name, tc.args)
	}

	fmt.Println("\nAll tests completed")
}

func testJobSearch(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nTEST: job_search (%s)\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "job_search",
		Arguments: args,
	})
	if err != nil {
		log.Printf("job_search failed: %v", err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Println("job_search returned a tool error")
		return
	}
	fmt.Println("job_search passed")
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
