package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	constants "github.com/ImGajeed76/datenight/internal"
	"github.com/ImGajeed76/datenight/pkg/datenight"
	"github.com/ImGajeed76/datenight/pkg/datenight/bank"
	"github.com/ImGajeed76/datenight/pkg/datenight/config"
	"github.com/ImGajeed76/datenight/pkg/datenight/console"
	"github.com/ImGajeed76/datenight/pkg/datenight/logger"
	"github.com/ImGajeed76/datenight/pkg/datenight/session"
)

// fatal logs err and exits. Without a log file the zap logger is silent, so
// the message also goes to stderr.
func fatal(lg *zap.Logger, msg string, err error, fields ...zap.Field) {
	lg.Error(msg, append(fields, zap.Error(err))...)
	_ = lg.Sync()
	log.Fatalf("%s: %v", msg, err)
}

var errPickNeedsEndless = errors.New("--pick only applies to endless mode")

// checkPick rejects --pick outside endless mode.
func checkPick(pick bool, mode string) error {
	if pick && mode != session.ModeEndless {
		return fmt.Errorf("mode %q: %w", mode, errPickNeedsEndless)
	}
	return nil
}

func main() {
	fs := pflag.NewFlagSet("datenight", pflag.ExitOnError)
	config.BindFlags(fs)
	remember := fs.Bool("remember", false, "remember --mode and --bank for the next start")
	forget := fs.Bool("forget", false, "forget remembered preferences")
	pick := fs.Bool("pick", false, "choose the starting topic from a list (endless mode)")
	version := fs.BoolP("version", "v", false, "print the version and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		fmt.Println("datenight", constants.Version)
		return
	}

	prefs, err := config.NewPreferences(config.DefaultService)
	if err != nil {
		log.Fatalf("failed to open preferences: %v", err)
	}
	if *forget {
		if err := prefs.Forget(); err != nil {
			log.Fatalf("failed to forget preferences: %v", err)
		}
	}

	cfg, err := config.Load(fs, prefs)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := checkPick(*pick, cfg.Mode); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	b := bank.Default()
	if cfg.Bank.Path != "" {
		b, err = bank.Load(cfg.Bank.Path, cfg.Bank.Encoding)
		if err != nil {
			fatal(lg, "failed to load question bank", err, zap.String("path", cfg.Bank.Path))
		}
	}

	if *remember {
		if err := prefs.Remember(cfg); err != nil {
			fatal(lg, "failed to remember preferences", err)
		}
	}

	if *pick {
		category, err := console.PickCategory(b)
		if errors.Is(err, console.ErrPickCancelled) {
			return
		}
		if err != nil {
			fatal(lg, "failed to pick a category", err)
		}
		cfg.Category = category
	}

	state, err := datenight.Run(cfg, b, lg)
	if err != nil {
		if errors.Is(err, bank.ErrTooFewCategories) {
			fatal(lg, "question bank too small for this mode", err, zap.String("mode", cfg.Mode))
		}
		fatal(lg, "datenight stopped", err)
	}

	if state.Summary() {
		categories := state.Categories()
		sort.SliceStable(categories, func(i, j int) bool {
			return state.Tally(categories[i]) > state.Tally(categories[j])
		})
		for _, c := range categories {
			fmt.Printf("%-12s %+d\n", c, state.Tally(c))
		}
	}
}
