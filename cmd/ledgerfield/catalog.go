package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgerfield/internal/catalog"
	"github.com/Veraticus/ledgerfield/internal/cli"
	"github.com/Veraticus/ledgerfield/internal/common"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and show the method and tag catalog",
		Long: `Bulk load transaction methods and tags from a YAML file, or print the
current catalog. The file format is:

  tx_methods: [Bank, Cash]
  tags: [food, travel]`,
	}

	cmd.AddCommand(importCatalogCmd())
	cmd.AddCommand(showCatalogCmd())

	return cmd
}

func importCatalogCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add methods and tags from a YAML file",
		Long:  `Add every method and tag listed in the file. Names already in the catalog are skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := catalog.LoadFile(args[0])
			if err != nil {
				return common.NewUserError("Could not read catalog file", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			var progress func()
			if !noProgress && file.Len() > 0 {
				progress = cli.ProgressFunc(cli.NewProgressBar(out, file.Len(), "Importing catalog..."))
			}

			res, err := catalog.Import(ctx, store, file, progress)
			if err != nil {
				return err
			}

			common.LogInfo("Imported catalog", common.Fields{
				"file":    args[0],
				"added":   res.Added,
				"skipped": res.Skipped,
			})
			fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %d entries, skipped %d existing", res.Added, res.Skipped)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not draw a progress bar")

	return cmd
}

func showCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the catalog as YAML",
		Long:  `Print the current methods and tags in the same YAML format that import reads.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			snapshot, err := store.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			return catalog.Write(cmd.OutOrStdout(), catalog.File{
				TxMethods: snapshot.TxMethods(),
				Tags:      snapshot.Tags(),
			})
		},
	}
}
