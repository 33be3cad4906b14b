package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List discovered document sections in manifest order",
	Args:  cobra.NoArgs,
	Run:   runSections,
}

var sectionsJSON bool

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output as JSON")
}

func runSections(cmd *cobra.Command, args []string) {
	_, gen, err := loadGenerator()
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	secs := gen.Sections()
	if sectionsJSON {
		out, _ := json.MarshalIndent(secs, "", "  ")
		fmt.Println(string(out))
		return
	}

	if len(secs) == 0 {
		fmt.Println("no sections discovered")
		return
	}

	for _, s := range secs {
		fmt.Printf("  %s [%s] order=%d\n", s.DisplayName, s.Name, s.Order)
		for _, d := range s.Documents {
			fmt.Printf("    - %s (%s)\n", d.Title, d.URL)
		}
	}
}
