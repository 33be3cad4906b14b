package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jcdickinson/llmsgen/internal/resolve"
	"github.com/jcdickinson/llmsgen/internal/symbols"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <ref> [ref ...]",
	Short: "Resolve symbol references to URLs",
	Example: `  llmsgen resolve 'lib!'
  llmsgen resolve 'lib!Client.send' 'lib!VERSION'
  llmsgen resolve --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if resolveList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	Run: runResolve,
}

var resolveList bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveList, "list", false, "list every symbol reference and its URL")
}

func runResolve(cmd *cobra.Command, args []string) {
	_, gen, err := loadGenerator()
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	resolver := gen.Resolver()
	if resolveList {
		resolver.Tree.Walk(func(n *symbols.Node) {
			ref := resolve.ReferenceFor(n)
			url, _ := resolver.Resolve(ref)
			fmt.Printf("  %s (%s) -> %s\n", ref, n.Kind, url)
		})
		return
	}

	failed := false
	for _, ref := range args {
		url, err := resolver.Resolve(ref)
		if err != nil {
			fmt.Printf("  %s: error: %v\n", ref, err)
			failed = true
			continue
		}
		fmt.Printf("  %s -> %s\n", ref, url)
	}
	if failed {
		os.Exit(1)
	}
}
