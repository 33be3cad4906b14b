package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jcdickinson/llmsgen/internal/config"
	"github.com/jcdickinson/llmsgen/internal/project"
	"github.com/jcdickinson/llmsgen/internal/summary"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "llmsgen",
	Short: "Generate an llms.txt summary manifest for a documentation project",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose log output")
	rootCmd.PersistentFlags().StringVar(&config.ConfigFile, "config", "", "config file (default: ./llmsgen.{toml,yaml,json})")
	rootCmd.PersistentFlags().String("project", "", "project model JSON (.json or .json.zst)")
	rootCmd.PersistentFlags().String("base-url", "", "base URL prepended to every link")
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(mcpCmd)
}

// loadGenerator reads config and the project model. An empty project path
// means the host supplied no symbol tree.
func loadGenerator() (*config.Config, *summary.Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	var model *project.Model
	if cfg.Project != "" {
		model, err = project.Load(cfg.Project)
		if err != nil {
			return nil, nil, fmt.Errorf("loading project: %w", err)
		}
		slog.Debug("project model loaded", "path", cfg.Project, "roots", len(model.Tree().Roots))
	}
	return cfg, summary.New(cfg, model), nil
}
