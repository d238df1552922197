package readingreact

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/theme"
	"github.com/zmzlois/readingreact/web/routes"
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <grid>",
	Short: "Render a stored grid as a static HTML page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := theme.Load(viper.GetViper())
		if err != nil {
			return err
		}

		policy, err := grid.ParseOverflowPolicy(overflow)
		if err != nil {
			return err
		}

		storage, err := db.NewStorageFromPath(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		doc, err := storage.LoadGrid(name)
		if err != nil {
			return err
		}

		out := outPath
		if out == "" {
			out = name + ".html"
		}

		handler := &routes.ServerHandler{
			Theme:         cfg,
			Overflow:      policy,
			DefaultLocale: defaultLocale,
			Env:           os.Getenv,
		}

		// rendered in full before anything touches out
		var buf bytes.Buffer
		if err := handler.WriteGridPage(cmd.Context(), &buf, doc); err != nil {
			return fmt.Errorf("could not render grid %s: %w", name, err)
		}

		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("could not write %s: %w", out, err)
		}

		slog.InfoContext(logCtx, "Rendered grid", "name", name, "out", out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./grids.sqlite",
		"Path to the sqlite file with imported grids")

	renderCmd.Flags().StringVarP(&outPath,
		"out",
		"o",
		"",
		"Output file (default is <grid>.html)")

	renderCmd.Flags().StringVar(&overflow,
		"overflow",
		string(grid.OverflowAllow),
		"What to do with cells outside of their grid: allow, clamp or reject")

	renderCmd.Flags().StringVar(&defaultLocale,
		"default-locale",
		"en",
		"Locale whose pages are served without a locale prefix")
}
