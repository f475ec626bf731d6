package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgerfield/internal/cli"
	"github.com/Veraticus/ledgerfield/internal/common"
	"github.com/Veraticus/ledgerfield/internal/storage"
)

// entryKind describes one of the named lists kept in the catalog.
type entryKind struct {
	list   func(*storage.SQLiteStorage, context.Context) ([]string, error)
	add    func(*storage.SQLiteStorage, context.Context, string) error
	remove func(*storage.SQLiteStorage, context.Context, string) error
	use    string
	noun   string
	plural string
}

var (
	methodEntries = entryKind{
		use:    "methods",
		noun:   "transaction method",
		plural: "transaction methods",
		list:   (*storage.SQLiteStorage).ListTxMethods,
		add:    (*storage.SQLiteStorage).AddTxMethod,
		remove: (*storage.SQLiteStorage).RemoveTxMethod,
	}
	tagEntries = entryKind{
		use:    "tags",
		noun:   "tag",
		plural: "tags",
		list:   (*storage.SQLiteStorage).ListTags,
		add:    (*storage.SQLiteStorage).AddTag,
		remove: (*storage.SQLiteStorage).RemoveTag,
	}
)

func methodsCmd() *cobra.Command {
	return entriesCmd(methodEntries)
}

func tagsCmd() *cobra.Command {
	return entriesCmd(tagEntries)
}

func entriesCmd(kind entryKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.use,
		Short: fmt.Sprintf("Manage known %s", kind.plural),
		Long:  fmt.Sprintf("List, add and remove the %s that field validation accepts.", kind.plural),
	}

	cmd.AddCommand(listEntriesCmd(kind))
	cmd.AddCommand(addEntryCmd(kind))
	cmd.AddCommand(removeEntryCmd(kind))

	return cmd
}

func listEntriesCmd(kind entryKind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", kind.plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			names, err := kind.list(store, ctx)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", kind.plural, err)
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fprintln(out, cli.InfoStyle.Render(fmt.Sprintf("No %s found. Use 'ledgerfield %s add' to create one.", kind.plural, kind.use)))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n", cli.TableHeaderStyle.Render("#"), cli.TableHeaderStyle.Render("Name"))
			for i, name := range names {
				fmt.Fprintf(w, "%d\t%s\n", i+1, name)
			}
			return nil
		},
	}
}

func addEntryCmd(kind entryKind) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: fmt.Sprintf("Add one or more %s", kind.plural),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			for _, name := range args {
				err := kind.add(store, ctx, name)
				switch {
				case errors.Is(err, common.ErrDuplicateEntry):
					fprintln(out, cli.FormatWarning(fmt.Sprintf("%s %q already exists", kind.noun, name)))
				case err != nil:
					return common.NewUserError(fmt.Sprintf("Could not add %s %q", kind.noun, name), err)
				default:
					fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %s %q", kind.noun, name)))
				}
			}
			return nil
		},
	}
}

func removeEntryCmd(kind entryKind) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Remove a %s", kind.noun),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := kind.remove(store, ctx, args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("Could not remove %s %q", kind.noun, args[0]), err)
			}

			fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed %s %q", kind.noun, args[0])))
			return nil
		},
	}
}
