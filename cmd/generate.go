package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the summary manifest into the output directory",
	Example: `  llmsgen generate
  llmsgen generate --project build/project.json.zst --out-dir site
  llmsgen generate --stdout`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

var generateStdout bool

func init() {
	generateCmd.Flags().String("out-dir", "", "output directory (default: docs)")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the manifest instead of writing it")
	viper.BindPFlag("out_dir", generateCmd.Flags().Lookup("out-dir"))
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg, gen, err := loadGenerator()
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	if generateStdout {
		b, err := gen.Build()
		if err != nil {
			slog.Error("failed to build manifest", "error", err)
			os.Exit(1)
		}
		fmt.Print(gen.Render(b))
		return
	}

	out, err := gen.Generate(cfg.OutDir)
	if err != nil {
		slog.Error("failed to generate manifest", "error", err)
		os.Exit(1)
	}
	if out != "" {
		fmt.Println(out)
	}
}
