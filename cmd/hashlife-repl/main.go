package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/phroun/hashlife"
	"github.com/phroun/hashlife/pattern"
	"github.com/phroun/hashlife/render"
)

// REPL holds the state of the interactive session
type REPL struct {
	store    *hashlife.Store
	universe *hashlife.Universe
	logger   *slog.Logger
	reader   *bufio.Reader
	color    bool
}

func main() {
	fmt.Println("HashLife REPL - Interactive Game of Life")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		store:  hashlife.NewStore(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		reader: bufio.NewReader(os.Stdin),
		color:  render.ColorEnabled("auto", os.Stdout),
	}

	// Main loop
	for {
		fmt.Print("hashlife> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "load":
		r.cmdLoad(args)

	case "builtin":
		r.cmdBuiltin(args)

	case "patterns":
		fmt.Println(strings.Join(pattern.BuiltinNames(), " "))

	case "step":
		r.cmdAdvance([]string{"1"})

	case "advance":
		r.cmdAdvance(args)

	case "show":
		r.cmdShow(args)

	case "get":
		r.cmdGet(args)

	case "status":
		r.cmdStatus()

	case "stats":
		r.cmdStats()

	case "collect":
		r.cmdCollect()

	case "debug":
		r.cmdDebug(args)

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

PATTERNS:
  load <path> [format]    Load a pattern file (format: auto, rle, plaintext)
  builtin <name>          Load a builtin pattern
  patterns                List builtin patterns

SIMULATION:
  step                    Advance one generation
  advance <n>             Advance n generations

INSPECTION:
  show [top left rows cols]  Render a window (default: live bounding box)
  get <i> <j>             Show the state of one cell
  status                  Show generation, population and root level
  stats                   Show node store statistics

MAINTENANCE:
  collect                 Reclaim nodes not reachable from the current root
  debug on|off            Toggle debug logging

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL

NOTE: All patterns share one node store, so loading a pattern seen before
      reuses its memoized results.
`
	fmt.Println(help)
}

func (r *REPL) install(p *pattern.Pattern) {
	u, err := hashlife.New(p.Rows, p.Cols, p.Cells, hashlife.Options{Store: r.store, Logger: r.logger})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.universe = u
	fmt.Printf("Loaded %s: %dx%d, population %d\n", p.Name, p.Cols, p.Rows, u.Population())
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: load <path> [format]")
		return
	}
	format := pattern.FormatAuto
	if len(args) > 1 {
		var err error
		if format, err = pattern.ParseFormat(args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	p, err := pattern.Load(args[0], format)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.install(p)
}

func (r *REPL) cmdBuiltin(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: builtin <name>")
		return
	}
	p, err := pattern.Builtin(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.install(p)
}

func (r *REPL) cmdAdvance(args []string) {
	if !r.ensureUniverse() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: advance <n>")
		return
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid generation count: %s\n", args[0])
		return
	}
	if err := r.universe.Advance(n); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.cmdStatus()
}

func (r *REPL) cmdShow(args []string) {
	if !r.ensureUniverse() {
		return
	}

	var vp render.Viewport
	switch len(args) {
	case 0:
		box, ok := r.universe.BoundingBox()
		if !ok {
			fmt.Println("(empty)")
			return
		}
		vp = render.Fit(box.Top, box.Left, box.Rows, box.Cols, 40, 80)
	case 4:
		vals := make([]int64, 4)
		for i, a := range args {
			v, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				fmt.Printf("Invalid number: %s\n", a)
				return
			}
			vals[i] = v
		}
		vp = render.Viewport{Top: vals[0], Left: vals[1], Rows: vals[2], Cols: vals[3]}
	default:
		fmt.Println("Usage: show [top left rows cols]")
		return
	}

	fmt.Printf("rows %d..%d, cols %d..%d\n", vp.Top, vp.Top+vp.Rows-1, vp.Left, vp.Left+vp.Cols-1)
	fmt.Print(render.Text(r.universe, vp, render.Options{Color: r.color}))
}

func (r *REPL) cmdGet(args []string) {
	if !r.ensureUniverse() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: get <i> <j>")
		return
	}
	i, err1 := strconv.ParseInt(args[0], 10, 64)
	j, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Println("Invalid coordinates")
		return
	}
	state := "dead"
	if r.universe.Get(i, j) {
		state = "alive"
	}
	fmt.Printf("(%d, %d) is %s\n", i, j, state)
}

func (r *REPL) cmdStatus() {
	if !r.ensureUniverse() {
		return
	}
	fmt.Printf("Generation: %d\n", r.universe.Generation())
	fmt.Printf("Population: %d\n", r.universe.Population())
	fmt.Printf("Root level: %d\n", r.universe.Level())
}

func (r *REPL) cmdStats() {
	s := r.store.Stats()
	fmt.Printf("Nodes:        %d\n", s.Nodes)
	fmt.Printf("Free slots:   %d\n", s.FreeSlots)
	fmt.Printf("Results:      %d\n", s.Results)
	fmt.Printf("Cache hits:   %d\n", s.CacheHits)
	fmt.Printf("Cache misses: %d\n", s.CacheMisses)
	fmt.Printf("Collections:  %d (%d swept)\n", s.Collections, s.Swept)
}

func (r *REPL) cmdCollect() {
	if !r.ensureUniverse() {
		return
	}
	stats := r.universe.Collect()
	fmt.Printf("Kept %d nodes, swept %d, dropped %d results\n", stats.Marked, stats.Swept, stats.ResultsDropped)
}

func (r *REPL) cmdDebug(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Println("Usage: debug on|off")
		return
	}
	if args[0] == "on" {
		r.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.universe != nil {
		r.universe.SetLogger(r.logger)
	}
}

func (r *REPL) ensureUniverse() bool {
	if r.universe == nil {
		fmt.Println("No pattern loaded. Use 'load <path>' or 'builtin <name>'.")
		return false
	}
	return true
}
