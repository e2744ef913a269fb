package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var modeSports []string

// modeCmd represents the mode command
var modeCmd = &cobra.Command{
	Use:   "mode <query>",
	Short: "Guess whether a free-text query names a player or a team",
	Long: `Mode probes every listed sport's pattern index with the query and
reports the most plausible entity kind. Ties and unmatched queries
default to player.

Example:
  scoracle mode "inter miami"
  scoracle mode --sports soccer,basketball "lebron james"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMode,
}

func init() {
	rootCmd.AddCommand(modeCmd)

	modeCmd.Flags().StringSliceVar(&modeSports, "sports", []string{"soccer"}, "sports whose catalogs inform the guess")
}

func runMode(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

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

	mode, err := svc.DetectMode(ctx, modeSports, query)
	if err != nil {
		return fmt.Errorf("mode detection failed: %w", err)
	}

	fmt.Println(mode)
	return nil
}
