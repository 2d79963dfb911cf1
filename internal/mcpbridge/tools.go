package mcpbridge

import (
	stdctx "context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
	"github.com/nkessler/spireengine/internal/textlog"
)

// activeSession is the singleton run session (one per stdio process),
// ported from the teacher's activeSession/decksFile singleton-globals
// pattern — this engine has no per-process deck config to carry alongside
// it, so the global surface here is smaller.
var activeSession *Session

// RegisterTools adds the run's tools to the MCP server, ported from
// RegisterTools's AddTool sequence.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startRunTool(), handleStartRun)
	s.AddTool(chooseTool(), handleChoose)
	s.AddTool(getRunStateTool(), handleGetRunState)
}

func startRunTool() mcp.Tool {
	return mcp.NewTool("start_run",
		mcp.WithDescription("Start a new run. Returns the initial notification log and the first pending decision (Neow's blessing)."),
		mcp.WithString("seed", mcp.Description("Run seed, as the game's alphanumeric seed string; omitted means a fixed default seed")),
		mcp.WithString("character", mcp.Description("Character to play: (I)ronclad, (S)ilent, (D)efect, or (W)atcher; defaults to Ironclad")),
		mcp.WithNumber("ascension", mcp.Description("Ascension level (0 = disabled); defaults to 0")),
	)
}

func chooseTool() mcp.Tool {
	return mcp.NewTool("choose",
		mcp.WithDescription("Pick an option from the current pending decision's choice list by 0-based index."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the pending decision's choices")),
	)
}

func getRunStateTool() mcp.Tool {
	return mcp.NewTool("get_run_state",
		mcp.WithDescription("Get the accumulated notification log and pending decision without submitting a choice. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartRun(ctx stdctx.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A run is already in progress. Only one run at a time is supported."), nil
	}

	seedStr := request.GetString("seed", "2")
	seed, err := rng.ParseSeed(seedStr)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid seed %q: %v", seedStr, err), nil
	}

	characterStr := request.GetString("character", "I")
	characterID, err := data.ParseCharacter(characterStr)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid character %q: %v", characterStr, err), nil
	}

	ascension := data.Ascension(request.GetInt("ascension", 0))

	sess, err := NewSession(seed, characterID, ascension)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start run: %v", err), nil
	}
	activeSession = sess

	return toolResult(sess.Start()), nil
}

func handleChoose(ctx stdctx.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No run is in progress. Use start_run first."), nil
	}
	sess := activeSession

	index := request.GetInt("index", -1)
	state, ok := sess.Choose(index)
	if !ok {
		return mcp.NewToolResultError("No pending decision to respond to."), nil
	}
	if state.GameOver {
		activeSession = nil
	}
	return toolResult(state), nil
}

func handleGetRunState(ctx stdctx.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No run is in progress. Use start_run first."), nil
	}
	return toolResult(activeSession.Peek()), nil
}

// --- Response rendering ---

// toolResponse is the JSON envelope every tool call returns, ported from
// the teacher's ToolResponse.
type toolResponse struct {
	SessionID string       `json:"session_id,omitempty"`
	Log       string       `json:"log"`
	Pending   *pendingView `json:"pending,omitempty"`
	GameOver  bool         `json:"game_over"`
	Victory   bool         `json:"victory,omitempty"`
	Error     string       `json:"error,omitempty"`
}

type pendingView struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

func toolResult(state State) *mcp.CallToolResult {
	resp := toolResponse{
		SessionID: state.SessionID,
		Log:       textlog.FormatAll(state.Notifications),
		GameOver:  state.GameOver,
		Victory:   state.Victory,
	}
	if state.Err != nil {
		resp.Error = state.Err.Error()
	}
	if state.Pending != nil {
		choices := make([]string, len(state.Pending.Choices))
		for i, c := range state.Pending.Choices {
			choices[i] = c.Describe()
		}
		resp.Pending = &pendingView{Prompt: state.Pending.Prompt.String(), Choices: choices}
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return mcp.NewToolResultErrorf("marshal error: %v", err)
	}
	return mcp.NewToolResultText(string(out))
}
