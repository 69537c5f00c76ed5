// Package main provides the CLI entry point for fsgen: an HTTP service and
// command-line tool for generating SAP Functional Specification documents.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sapfs/fsgen/internal/ai"
	"github.com/sapfs/fsgen/internal/config"
	"github.com/sapfs/fsgen/internal/logging"
	"github.com/sapfs/fsgen/internal/sheet"
	"github.com/sapfs/fsgen/internal/store"
	"github.com/sapfs/fsgen/internal/web"
)

var (
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fsgen",
		Short: "Generate SAP Functional Specification documents",
		Long: `fsgen serves a document-generation API that turns user requests and
uploaded reference files into Functional Specification documents, and
parses vendor table-export workbooks into field-mapping tables.`,
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	parseCmd := &cobra.Command{
		Use:   "parse [input.xlsx]",
		Short: "Parse a vendor table-export workbook and output JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(serveCmd, parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	aiClient := ai.NewClient(ai.Config{
		Backend:       ai.Backend(cfg.AI.Backend),
		Model:         cfg.AI.Model,
		APIKey:        cfg.AI.APIKey,
		BaseURL:       cfg.AI.BaseURL,
		Temperature:   cfg.AI.Temperature(),
		Timeout:       cfg.AI.Timeout,
		MaxConcurrent: cfg.AI.MaxConcurrent,
		MaxWait:       cfg.AI.MaxWait,
	})

	srv := web.NewServer(cfg, store.New(cfg.Upload.Dir), aiClient)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"addr", cfg.Server.Addr(),
			"ai_backend", cfg.AI.Backend,
		)
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		slog.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Let in-flight generations finish before closing listeners.
	if err := aiClient.Limiter().WaitForDrain(ctx); err != nil {
		slog.Warn("generations still active at shutdown", "error", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	info, err := sheet.ParseTableDefinition(data)
	if err != nil {
		return fmt.Errorf("parsing table definition: %w", err)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(info, "", "  ")
	} else {
		out, err = json.Marshal(info)
	}
	if err != nil {
		return fmt.Errorf("serializing result: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	fmt.Println(string(out))
	return nil
}
