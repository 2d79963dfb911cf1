// Command stsim-mcp serves the engine over MCP's stdio transport, ported
// from cmd/tcgx-mcp's main — simplified since this engine has no decks file
// or TCP human-join port to flag in.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nkessler/spireengine/internal/mcpbridge"
)

func main() {
	s := server.NewMCPServer("stsim", "1.0.0")
	mcpbridge.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
