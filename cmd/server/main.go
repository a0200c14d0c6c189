package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var (
	openapiOutput string
	openapiServer string
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the PHPStan UI",
	Long: `Serve the PHPStan UI web application and its JSON API.

Running without a subcommand is the same as "serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve embedded templates and assets",
	RunE:  runServe,
}

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Serve from disk and reload templates on change",
	Long: `Serve templates and assets from the dev source directory on the dev port.

Templates are reparsed whenever a file covered by the build content globs
changes. The browser is opened on start unless dev.open is false.`,
	RunE: runDev,
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table in resolution order",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the files matched by the build content globs",
	Args:  cobra.NoArgs,
	RunE:  runContent,
}

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Write the API OpenAPI document to a file",
	Args:  cobra.NoArgs,
	RunE:  runOpenAPI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: config.toml)")
	rootCmd.Version = version

	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "openapi.json", "Output file")
	openapiCmd.Flags().StringVar(&openapiServer, "server", "", "Server URL to list in the document")

	rootCmd.AddCommand(serveCmd, devCmd, routesCmd, contentCmd, openapiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
