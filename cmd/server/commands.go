package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/phpstan-ui/internal/api"
	"github.com/JaimeStill/phpstan-ui/internal/infrastructure"
	"github.com/JaimeStill/phpstan-ui/pkg/content"
	"github.com/JaimeStill/phpstan-ui/pkg/openapi"
	"github.com/JaimeStill/phpstan-ui/web/app"
)

func runRoutes(cmd *cobra.Command, args []string) error {
	table := app.NewTable()
	catchAll := table.CatchAll().Name

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATTERN\tVIEW\t")
	for _, r := range table.Routes() {
		marker := ""
		if r.Name == catchAll {
			marker = "catch-all"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Pattern, r.View.Template, marker)
	}
	return tw.Flush()
}

func runContent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files, err := content.Scan(os.DirFS(sourceRoot()), cfg.Build.Matcher())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		fmt.Fprintln(out, f)
	}
	return nil
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	infra := infrastructure.New(cfg, app.NewTable())
	spec := api.NewSpec(cfg, infra, os.DirFS(sourceRoot()), version)
	spec.AddServer(openapiServer)

	if err := openapi.WriteJSON(spec, openapiOutput); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), openapiOutput)
	return nil
}
