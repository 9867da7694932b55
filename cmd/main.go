package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/bluff-analysis/analysis"
	"github.com/luca-patrignani/bluff-analysis/api"
	"github.com/luca-patrignani/bluff-analysis/domain/bluff"
	"github.com/luca-patrignani/bluff-analysis/domain/deck"
	"github.com/luca-patrignani/bluff-analysis/domain/poker"
	"github.com/luca-patrignani/bluff-analysis/internal/config"
	"github.com/luca-patrignani/bluff-analysis/store"
)

const usage = `usage: bluff <command> [arguments]

commands:
  check <hole> <board>            classify hole cards on a flop, e.g. check "Qd Jd" "Kc 2d 2h"
  scan [-range R] <board>         list bluff candidates on a flop
  survey [-boards N] [-seed S] [-range R] [-dead D]
                                  scan sampled flops and record the report
  serve                           run the HTTP API`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "check":
		err = runCheck(os.Args[2:])
	case "scan":
		err = runScan(os.Args[2:])
	case "survey":
		err = runSurvey(ctx, cfg, logger, os.Args[2:])
	case "serve":
		err = runServe(ctx, cfg, logger)
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// newLogger returns a slog logger printing through the pterm logger.
func newLogger(level string) *slog.Logger {
	var l pterm.LogLevel
	switch level {
	case "debug":
		l = pterm.LogLevelDebug
	case "warn":
		l = pterm.LogLevelWarn
	case "error":
		l = pterm.LogLevelError
	default:
		l = pterm.LogLevelInfo
	}
	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(l)))
}

func runCheck(args []string) error {
	cards, err := poker.ParseCards(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(cards) != 5 {
		return fmt.Errorf("check needs 2 hole cards and 3 board cards, got %d cards", len(cards))
	}
	hand, err := poker.NewHand(poker.HoleCards(cards[:2]), poker.Board(cards[2:]))
	if err != nil {
		return err
	}
	printVerdict(hand, bluff.Evaluate(hand))
	return nil
}

func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	rangeFlag := fs.String("range", "", "restrict the scan to a range such as \"AKs,QJs,77\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	board, err := poker.ParseBoard(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	var hands []poker.HoleCards
	if *rangeFlag != "" {
		if hands, err = poker.ParseRange(*rangeFlag); err != nil {
			return err
		}
	}
	found, err := bluff.Collect(board, hands)
	if err != nil {
		return err
	}
	printCandidates(board, found)
	return nil
}

func runSurvey(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("survey", flag.ContinueOnError)
	boards := fs.Int("boards", cfg.SurveyBoards, "number of distinct flops to sample")
	seed := fs.String("seed", cfg.SurveySeed, "seed for reproducible flops")
	rangeFlag := fs.String("range", "", "restrict the scan to a range")
	deadFlag := fs.String("dead", "", "cards known to be out of play, e.g. \"Ah Kh\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var dead []poker.Card
	if *deadFlag != "" {
		var err error
		if dead, err = poker.ParseCards(*deadFlag); err != nil {
			return err
		}
	}
	var hands []poker.HoleCards
	if *rangeFlag != "" {
		var err error
		if hands, err = poker.ParseRange(*rangeFlag); err != nil {
			return err
		}
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	chain, err := store.LoadChain(ctx, st)
	if err != nil {
		return err
	}

	d := deck.New(nil)
	if *seed != "" {
		d = deck.NewSeeded([]byte(*seed))
	}
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Scanning %d flops ...", *boards))
	report, err := analysis.Survey(ctx, d, *boards, hands, dead...)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()
	report.Seed, report.Range, report.Dead = *seed, *rangeFlag, *deadFlag

	block := chain.Next(report, "cli")
	if err := st.SaveBlock(ctx, block); err != nil {
		return fmt.Errorf("save survey: %w", err)
	}
	if err := chain.Commit(block); err != nil {
		return err
	}
	logger.Info("survey recorded", "index", block.Index, "hash", block.Hash[:12])
	printSurvey(report)
	return nil
}

func runServe(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("luff", pterm.FgDarkGray.ToStyle()),
	).Render()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	chain, err := store.LoadChain(ctx, st)
	if err != nil {
		return err
	}
	logger.Info("ledger loaded", "store", cfg.Store.Driver, "blocks", chain.Len())

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewServer(chain, st, logger, api.Options{SurveyBoards: cfg.SurveyBoards, SurveySeed: cfg.SurveySeed}).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
