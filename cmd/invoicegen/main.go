package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/flexprice/gstinvoice/internal/cli"
	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/pdf"
	"github.com/flexprice/gstinvoice/internal/storage"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/spf13/afero"
)

// Command represents a subcommand that can be run
type Command struct {
	Name        string
	Description string
	Run         func(ctx context.Context, args []string) error
}

var (
	outDir      string
	concurrency int
	useConfig   bool
)

var commands = []Command{
	{
		Name:        "render",
		Description: "Render invoice JSON files into PDFs",
		Run:         runRender,
	},
	{
		Name:        "words",
		Description: "Print an amount in Indian English words",
		Run:         runWords,
	},
}

func main() {
	var (
		listCommands bool
		cmdName      string
	)

	flag.BoolVar(&listCommands, "list", false, "List all available commands")
	flag.StringVar(&cmdName, "cmd", "", "Command to run")
	flag.StringVar(&outDir, "out", ".", "Output directory for rendered PDFs")
	flag.IntVar(&concurrency, "concurrency", cli.DefaultConcurrency, "Number of invoices rendered in parallel")
	flag.BoolVar(&useConfig, "config", false, "Load config.yaml and use its storage and invoice settings")

	flag.Parse()

	if listCommands {
		fmt.Println("Available commands:")
		for _, cmd := range commands {
			fmt.Printf("  %-20s %s\n", cmd.Name, cmd.Description)
		}
		return
	}

	if cmdName == "" {
		log.Fatal("Please specify a command to run using -cmd flag. Use -list to see available commands.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Run(ctx, flag.Args()); err != nil {
				log.Fatalf("Error running command %s: %v", cmdName, err)
			}
			return
		}
	}

	log.Fatalf("Unknown command: %s. Use -list to see available commands.", cmdName)
}

func loadConfig() (*config.Configuration, error) {
	if useConfig {
		return config.NewConfig()
	}
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Storage.Kind = types.StorageKindFS
	cfg.Storage.BasePath = outDir
	return cfg, nil
}

func runRender(ctx context.Context, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := storage.NewStore(cfg, log)
	if err != nil {
		return err
	}

	renderer := cli.NewRenderer(afero.NewOsFs(), pdf.NewGenerator(cfg, log), store, log)
	results, err := renderer.RenderFiles(ctx, cli.RenderOptions{
		Files:       args,
		Concurrency: concurrency,
	})
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("FAIL %s: %v\n", r.Source, r.Err)
			continue
		}
		fmt.Printf("OK   %s -> %s\n", r.Source, r.Location)
	}
	return err
}

func runWords(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("words takes exactly one amount, got %d", len(args))
	}
	text, err := cli.AmountInWords(args[0])
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
