// Command jscpd-mcp exposes the clone-detection engine as a Model Context
// Protocol server, grounded on pyscn-mcp's stdio-server wiring.
package main

import (
	"fmt"
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/moinsen-dev/jscpd2025/mcp"
)

const (
	serverName    = "jscpd"
	serverVersion = "1.0.0"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	mcp.RegisterTools(server, mcp.NewHandlerSet())

	log.Printf("Starting %s MCP server v%s\n", serverName, serverVersion)
	log.Println("Registered tools:")
	log.Println("  - find_clones: Detect duplicated code across paths")
	log.Println("  - get_duplication_stats: Summarize duplication percentage per format")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
