// Package commands implements the CLI commands for the lifedash client.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kxvin1/life-dashboard/internal/app"
	"github.com/Kxvin1/life-dashboard/internal/build"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// CLI represents the command line interface for lifedash.
type CLI struct {
	app     Application
	logger  jsonToggler
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	AddTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	CompleteTask(ctx context.Context, id string) (domain.Task, error)
	ReopenTask(ctx context.Context, id string) (domain.Task, error)
	RemoveTask(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	AddCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	RemoveCategory(ctx context.Context, id string) error

	SummaryEntries(ctx context.Context) ([]domain.SummaryEntry, error)
	FollowSummary(ctx context.Context, out io.Writer, interval time.Duration) error

	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

// jsonToggler is satisfied by loggers that can switch to JSON output.
type jsonToggler interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lifedash",
		Short:         "A command line client for your life dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	if toggler, ok := logger.(jsonToggler); ok {
		c.logger = toggler
	}

	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logger == nil {
			return
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		c.logger.SetJSON(jsonMode)
	}

	rootCmd.AddCommand(c.newTaskCmd())
	rootCmd.AddCommand(c.newCategoryCmd())
	rootCmd.AddCommand(c.newSummaryCmd())
	rootCmd.AddCommand(c.newLoginCmd())
	rootCmd.AddCommand(c.newLogoutCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

var _ Application = (*app.App)(nil)
