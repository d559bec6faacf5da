// Command portfolio serves the portfolio site and inspects its carousel layout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/eringen/portfolio"
	"github.com/eringen/portfolio/views"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "portfolio - a server-rendered portfolio site built with Go, Echo, and templ",
		Long: `portfolio serves a certifications carousel, a filterable project gallery
and a skills display from a YAML dataset.

Configuration is read from an optional YAML file, PORTFOLIO_* environment
variables (a .env file in the working directory is loaded first) and flags,
in increasing order of precedence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running without a subcommand starts the server.
		RunE: serve.RunE,
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	addServeFlags(root)

	root.AddCommand(serve)
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "listen address (default \":3000\")")
	cmd.Flags().String("url", "", "canonical site URL")
	cmd.Flags().String("database-path", "", "SQLite path (default in-memory)")
	cmd.Flags().String("content-path", "", "YAML dataset (default embedded)")
	cmd.Flags().String("static-dir", "", "static asset directory (default \"public\")")
	cmd.Flags().Bool("cookie-secure", false, "mark cookies Secure (HTTPS only)")
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Example: `  # Serve the embedded dataset on :3000
  portfolio serve

  # Serve a custom dataset over HTTPS behind a proxy
  portfolio serve --content-path content.yaml --url https://me.example --cookie-secure`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := portfolio.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			app := portfolio.New(cfg, views.Default())
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx)
		},
	}
	addServeFlags(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the portfolio version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s\n", version)
		},
	}
}
