package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eringen/portfolio"
	"github.com/eringen/portfolio/carousel"
)

func newInspectCmd() *cobra.Command {
	var (
		width    int
		section  string
		category string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print how the dataset pages at a viewport width",
		Example: `  # Page layout on a phone
  portfolio inspect --width 375

  # React projects on a tablet
  portfolio inspect --width 800 --section projects --category React`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := portfolio.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			content, err := portfolio.LoadContent(cfg.ContentPath)
			if err != nil {
				return err
			}
			return renderLayout(cmd.OutOrStdout(), content, width, section, category)
		},
	}
	cmd.Flags().IntVar(&width, "width", portfolio.DefaultViewportWidth, "viewport width in pixels")
	cmd.Flags().StringVar(&section, "section", "all", "section to show (certifications|projects|all)")
	cmd.Flags().StringVar(&category, "category", portfolio.AllCategories, "project category filter")
	cmd.Flags().String("content-path", "", "YAML dataset (default embedded)")

	_ = cmd.RegisterFlagCompletionFunc("section", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{portfolio.SectionCertifications, portfolio.SectionProjects, "all"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// renderLayout prints one table per section listing every page and slot
// the carousel would show at width.
func renderLayout(w io.Writer, content portfolio.Content, width int, section, category string) error {
	if width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", width)
	}
	perPage := carousel.NewResolver(carousel.Width(width)).ItemsPerPage()

	switch section {
	case "all", portfolio.SectionCertifications, portfolio.SectionProjects:
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	if section != portfolio.SectionProjects {
		titles := make([]string, len(content.Certifications))
		for i, c := range content.Certifications {
			titles[i] = c.Title
		}
		writeSection(w, portfolio.SectionCertifications, titles, perPage)
	}
	if section != portfolio.SectionCertifications {
		projects := portfolio.FilterProjects(content.Projects, category)
		titles := make([]string, len(projects))
		for i, p := range projects {
			titles[i] = p.Title
		}
		writeSection(w, fmt.Sprintf("%s (%s)", portfolio.SectionProjects, category), titles, perPage)
	}
	return nil
}

func writeSection(w io.Writer, name string, titles []string, perPage int) {
	total := carousel.TotalPages(len(titles), perPage)
	_, _ = fmt.Fprintf(w, "%s: %d items, %d per page, %d pages\n", name, len(titles), perPage, total)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Page", "Slot", "Title"})
	for page := 0; page < total; page++ {
		view := carousel.View(titles, carousel.State{PerPage: perPage, Index: page})
		for i, slot := range view.Slots {
			title := slot.Item
			if slot.Placeholder {
				title = "(placeholder)"
			}
			t.AppendRow(table.Row{page + 1, i + 1, title})
		}
		if page < total-1 {
			t.AppendSeparator()
		}
	}
	t.Render()
	_, _ = fmt.Fprintln(w)
}
