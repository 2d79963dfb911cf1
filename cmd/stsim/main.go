// Command stsim plays one run interactively on a terminal, prompting for a
// choice index at each decision and printing each notification as it
// arrives. tcgx-cli's own host/join subcommands are TCP-based (the teacher
// always drives a duel between two network-connected players), which this
// single-player engine has no use for; this entry point is instead
// generalized straight from internal/mcpbridge's Notify/PromptChoice
// pattern, with os.Stdin/os.Stdout standing in for the MCP round-trip.
package main

import (
	"bufio"
	stdctx "context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
	"github.com/nkessler/spireengine/internal/run"
	"github.com/nkessler/spireengine/internal/textlog"
)

func main() {
	seedStr := flag.String("seed", "2", "run seed")
	characterStr := flag.String("character", "I", "character: I, S, D, or W")
	ascension := flag.Int("ascension", 0, "ascension level")
	flag.Parse()

	seed, err := rng.ParseSeed(*seedStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid seed %q: %v\n", *seedStr, err)
		os.Exit(1)
	}
	characterID, err := data.ParseCharacter(*characterStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid character %q: %v\n", *characterStr, err)
		os.Exit(1)
	}

	tc := &ttyController{in: bufio.NewReader(os.Stdin)}
	r, err := run.NewRun(seed, characterID, data.Ascension(*ascension), tc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	victory, err := r.Run(stdctx.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run ended with error: %v\n", err)
		os.Exit(1)
	}
	if victory {
		fmt.Println("Victory!")
	} else {
		fmt.Println("Defeat.")
	}
}

// ttyController implements proto.Controller against a terminal: every
// notification prints as it arrives and every prompt reads a line of stdin,
// re-prompting on a malformed or out-of-range answer.
type ttyController struct {
	in *bufio.Reader
}

func (t *ttyController) Notify(ctx stdctx.Context, n proto.Notification) error {
	fmt.Println(textlog.FormatNotification(n))
	return nil
}

func (t *ttyController) PromptChoice(ctx stdctx.Context, prompt proto.Prompt, choices []proto.Choice) (int, error) {
	for {
		fmt.Printf("\n%s:\n", prompt)
		for i, c := range choices {
			fmt.Printf("  [%d] %s\n", i, c.Describe())
		}
		fmt.Print("> ")

		line, err := t.in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || index < 0 || index >= len(choices) {
			fmt.Println("Invalid choice, try again.")
			continue
		}
		return index, nil
	}
}

func (t *ttyController) GameOver(ctx stdctx.Context, victory bool) error {
	return nil
}
