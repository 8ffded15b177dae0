// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/agent-catalog/internal/catalog"
	"github.com/pdiddy/agent-catalog/internal/display"
	"github.com/pdiddy/agent-catalog/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the agent catalog to stdout as YAML or JSON",
	Long: `Export parses the agent README at ` + types.SourcePath + ` the same way
the default listing does and writes every category, in display order, with its
agents. Empty categories are included. Nothing is written to disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return runExport(cmd.OutOrStdout(), logger, types.SourcePath, types.ExportFormat(format))
	},
}

// runExport loads the README at source and writes it to w in format. A
// missing README prints the unavailable message, as the listing does.
func runExport(w io.Writer, log zerolog.Logger, source string, format types.ExportFormat) error {
	var write func(io.Writer, catalog.Catalog) error
	switch format {
	case types.ExportYAML, "":
		write = catalog.WriteYAML
	case types.ExportJSON:
		write = catalog.WriteJSON
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	cat, ok, err := catalog.Load(source)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("source", source).Msg("agent source not found")
		display.Render(w, nil, false)
		return nil
	}
	return write(w, cat)
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rootCmd.AddCommand(exportCmd)
}
