package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kxvin1/life-dashboard/internal/app"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
)

func (c *CLI) newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage finance categories",
	}
	cmd.AddCommand(c.newCategoryListCmd())
	cmd.AddCommand(c.newCategoryAddCmd())
	cmd.AddCommand(c.newCategoryRemoveCmd())
	return cmd
}

func (c *CLI) newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := c.app.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return app.RenderCategories(cmd.OutOrStdout(), categories)
		},
	}
}

func (c *CLI) newCategoryAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			if kind != string(domain.KindExpense) && kind != string(domain.KindIncome) {
				return fmt.Errorf("invalid --kind %q, expected %q or %q", kind, domain.KindExpense, domain.KindIncome)
			}

			category, err := c.app.AddCategory(cmd.Context(), domain.CategoryInput{
				Name: args[0],
				Kind: domain.CategoryKind(kind),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added category %s\n", category.ID)
			return nil
		},
	}
	cmd.Flags().String("kind", string(domain.KindExpense), "Category kind: expense or income")
	return cmd
}

func (c *CLI) newCategoryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed category %s\n", args[0])
			return nil
		},
	}
}
