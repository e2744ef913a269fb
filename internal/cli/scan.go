package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var scanSport string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <text>",
	Short: "Extract catalog entities mentioned in a text",
	Long: `Scan matches a text against the pattern index of one sport and prints
every matched entity with its confidence and match positions.

Example:
  scoracle scan --sport soccer "Palmer rescues a point for Chelsea FC"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanSport, "sport", "soccer", "sport catalog to match against")
}

func runScan(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Output.Verbose)

	svc, err := buildService(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	matches, err := svc.MatchText(ctx, scanSport, text)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}
