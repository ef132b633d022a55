// Command corechess loads a FEN position, runs the move scorer, and prints
// the ranked move list — a manual-test harness over the public driver
// interface, not a UCI engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"bitbucket.org/zurichess/corechess/config"
	"bitbucket.org/zurichess/corechess/engine"
	"bitbucket.org/zurichess/corechess/notation"
)

func main() {
	fen := flag.String("fen", engine.FENStartPos, "FEN position to search")
	depth := flag.Int("depth", 0, "max search depth (0 = config default)")
	nodes := flag.Uint64("nodes", 0, "node budget (0 = config default)")
	configPath := flag.String("config", "", "optional TOML config file")
	verbose := flag.Bool("v", false, "verbose per-depth logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Apply(cfg)
	if *depth > 0 {
		cfg.MaxDepth = *depth
	}
	if *nodes > 0 {
		cfg.NodeBudget = *nodes
	}

	board, err := engine.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zl, _ := zap.NewProduction()
	defer zl.Sync()
	var log engine.Logger = engine.NulLogger{}
	if *verbose {
		log = engine.NewZapLogger(zl.Sugar())
	}

	tt := engine.NewTranspositionTable(20)
	eng := engine.NewEngine(board, tt, log)

	root := board.LegalMoves()
	if len(root) == 0 {
		fmt.Println("no legal moves")
		return
	}

	ranked := eng.ScoreMoves(root, cfg.NodeBudget, cfg.MaxDepth, *verbose)
	best := color.New(color.FgGreen, color.Bold)
	for i, sm := range ranked {
		line := fmt.Sprintf("%2d. %-6s %6d", i+1, notation.SAN(board, sm.Move), sm.Score)
		if i == 0 {
			best.Println(line)
			continue
		}
		fmt.Println(line)
	}
}
