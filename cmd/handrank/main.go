package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handeval/poker"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate hands given in card notation"`
	Scan    ScanCmd          `cmd:"" help:"Enumerate every hand of a given size and tally categories"`
}

var (
	handStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Constant-time 5-7 card poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type EvalCmd struct {
	Hands []string `arg:"" required:"true" help:"Hands as concatenated cards, e.g. 'AsKsQsJsTs7d5s'"`
}

func (c *EvalCmd) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range c.Hands {
		h, err := poker.ParseHand(s)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", s, err)
		}
		if n := h.Len(); n < 5 || n > 7 {
			return fmt.Errorf("hand %q has %d cards, want 5 to 7", s, n)
		}
		rank := h.Evaluate()
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(h.String()),
			categoryStyle.Render(rank.Category().String()),
			fmt.Sprintf("rank %d index %d", uint16(rank), rank.Index()))
	}
	return w.Flush()
}

type ScanCmd struct {
	Cards   int  `default:"7" help:"Cards per hand (5 to 7)"`
	Workers int  `default:"0" help:"Worker goroutines (0 for GOMAXPROCS)"`
	Verbose bool `help:"Verbose logging"`
}

type scanTally struct {
	counts [poker.StraightFlush + 1]uint64
	seen   [1 << 16]bool
}

func (c *ScanCmd) Run() error {
	if c.Cards < 5 || c.Cards > 7 {
		return fmt.Errorf("cards must be 5 to 7, got %d", c.Cards)
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})
	logger.Debug("scanning", "cards", c.Cards, "workers", workers)

	start := time.Now()
	tallies := make([]*scanTally, poker.NumCards)
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for first := 0; first <= poker.NumCards-c.Cards; first++ {
		first := first
		tally := &scanTally{}
		tallies[first] = tally
		g.Go(func() error {
			scanFrom(poker.NewHand().AddCard(poker.Card(first)), first+1, c.Cards-1, tally)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var counts [poker.StraightFlush + 1]uint64
	var seen [1 << 16]bool
	distinct := 0
	var total uint64
	for _, tally := range tallies {
		if tally == nil {
			continue
		}
		for cat := range counts {
			counts[cat] += tally.counts[cat]
			total += tally.counts[cat]
		}
		for r := range tally.seen {
			if tally.seen[r] && !seen[r] {
				seen[r] = true
				distinct++
			}
		}
	}
	logger.Debug("scan complete", "hands", total, "duration", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for cat := poker.StraightFlush; ; cat-- {
		fmt.Fprintf(w, "%s\t%s\n",
			categoryStyle.Render(cat.String()),
			countStyle.Render(fmt.Sprintf("%d", counts[cat])))
		if cat == poker.HighCard {
			break
		}
	}
	fmt.Fprintf(w, "total\t%d\n", total)
	fmt.Fprintf(w, "distinct ranks\t%d\n", distinct)
	return w.Flush()
}

func scanFrom(h poker.Hand, next, remaining int, tally *scanTally) {
	if remaining == 0 {
		rank := h.Evaluate()
		tally.counts[rank.Category()]++
		tally.seen[rank] = true
		return
	}
	for card := next; card <= poker.NumCards-remaining; card++ {
		scanFrom(h.AddCard(poker.Card(card)), card+1, remaining-1, tally)
	}
}
