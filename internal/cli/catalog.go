package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/albapepper/Scoracle-sub000/internal/catalog"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage entity catalogs",
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed <catalog.json> <catalog.db>",
	Short: "Seed a SQLite catalog database from a JSON catalog file",
	Long: `Seed loads every sport from a JSON catalog file and writes it into a
SQLite catalog database, replacing any previous rows per sport. The
database can then serve as the catalog backend (driver: sqlite).

Example:
  scoracle catalog seed catalog.json catalog.db`,
	Args: cobra.ExactArgs(2),
	RunE: runCatalogSeed,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSeedCmd)
}

func runCatalogSeed(cmd *cobra.Command, args []string) error {
	sports, err := seedCatalogs(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Printf("Seeded %d sport catalogs into %s\n", len(sports), args[1])
	for _, sport := range sports {
		fmt.Printf("  - %s\n", sport)
	}
	return nil
}

// seedCatalogs copies every sport from the JSON file into the SQLite
// database and returns the sports written, in deterministic order.
func seedCatalogs(ctx context.Context, jsonPath, dbPath string) ([]string, error) {
	all, err := catalog.NewFileProvider(jsonPath).All(ctx)
	if err != nil {
		return nil, err
	}

	dst, err := catalog.OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	sports := make([]string, 0, len(all))
	for sport := range all {
		sports = append(sports, sport)
	}
	sort.Strings(sports)

	for _, sport := range sports {
		if err := dst.Save(ctx, all[sport]); err != nil {
			return nil, fmt.Errorf("save %s: %w", sport, err)
		}
	}
	return sports, nil
}
