package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/albapepper/Scoracle-sub000/internal/llm"
	"github.com/albapepper/Scoracle-sub000/internal/model"
)

var (
	mentionsSport  string
	mentionsWindow int
	mentionsDigest bool
)

// mentionsCmd represents the mentions command
var mentionsCmd = &cobra.Command{
	Use:   "mentions <player|team> <id>",
	Short: "Rank entities co-mentioned with a target in recent news",
	Long: `Mentions fetches recent news for a catalog entity and ranks every
other catalog entity mentioned alongside it. Retrieval starts with the
exact-quoted name in the requested window and broadens when it comes
back empty.

Example:
  scoracle mentions player 42 --sport soccer --window 48
  scoracle mentions team 7 --digest`,
	Args: cobra.ExactArgs(2),
	RunE: runMentions,
}

func init() {
	rootCmd.AddCommand(mentionsCmd)

	mentionsCmd.Flags().StringVar(&mentionsSport, "sport", "soccer", "sport catalog the target belongs to")
	mentionsCmd.Flags().IntVar(&mentionsWindow, "window", 0, "initial lookback window in hours (0 uses the configured default)")
	mentionsCmd.Flags().BoolVar(&mentionsDigest, "digest", false, "append an LLM-written prose digest (needs OPENAI_API_KEY)")
}

func runMentions(cmd *cobra.Command, args []string) error {
	target, err := parseTarget(args[0], args[1])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Output.Verbose)

	window := mentionsWindow
	if window <= 0 {
		window = cfg.News.WindowHours
	}

	svc, err := buildService(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout(cfg.HTTP.Timeout))
	defer cancel()

	report, err := svc.Mentions(ctx, mentionsSport, target, window)
	if err != nil {
		return fmt.Errorf("mentions failed: %w", err)
	}

	if mentionsDigest {
		if cfg.LLM.Provider == "" {
			cfg.LLM.Provider = "openai"
		}
		digester, err := llm.NewDigester(cfg.LLM)
		if err != nil {
			return err
		}
		digest, err := digester.Digest(ctx, report)
		if err != nil {
			log.Warn().Err(err).Msg("digest generation failed, printing report without it")
		} else {
			fmt.Fprintln(os.Stderr, digest)
			fmt.Fprintln(os.Stderr)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// commandTimeout bounds whole-command runs that fan out multiple fetches.
// The cascade can make up to three fetches plus a catalog load.
func commandTimeout(httpTimeout time.Duration) time.Duration {
	return 4 * httpTimeout
}

// parseTarget turns "player 42" style arguments into an entity ref
func parseTarget(kind, rawID string) (model.Ref, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return model.Ref{}, fmt.Errorf("entity id must be numeric, got %q", rawID)
	}

	switch kind {
	case "player":
		return model.Ref{Type: model.EntityPlayer, ID: id}, nil
	case "team":
		return model.Ref{Type: model.EntityTeam, ID: id}, nil
	default:
		return model.Ref{}, fmt.Errorf("entity kind must be player or team, got %q", kind)
	}
}
