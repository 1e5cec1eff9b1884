package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cardkit/cardkit/internal/config"
	"github.com/cardkit/cardkit/internal/ui"
	"github.com/cardkit/cardkit/internal/ui/components"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render a gallery of cards",
		Long: "Render the cards described by a gallery YAML file, or the built-in " +
			"showcase covering every variant, size and padding token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a gallery YAML file")

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, configPath string) error {
	log, err := flags.newLogger()
	if err != nil {
		return err
	}

	gallery := builtinGallery()
	if configPath != "" {
		parsed, err := config.ParseGallery(configPath)
		if err != nil {
			log.Error(err, "failed to load gallery")
			return err
		}
		gallery = parsed
	}

	themeName := flags.theme
	if themeName == "" {
		themeName = gallery.Theme
	}

	log.WithFields(map[string]any{
		"cards": len(gallery.Cards),
		"theme": themeName,
	}).Debug("rendering gallery")

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		// Piped output gets a plain listing instead of styled boxes.
		renderPlainGallery(out, gallery)
		return nil
	}

	ctx := components.DefaultContext().WithTheme(themeFor(themeName))
	// Cards are spaced by the theme margin scale rather than blank lines.
	margin := components.SymmetricSpacing(components.MarginValue(ctx.Theme, components.SpacingSmall), 0)
	for _, spec := range gallery.Cards {
		fmt.Fprintln(out, buildCard(spec).WithMargin(margin).ViewWithContext(ctx))
	}

	return nil
}

// buildCard constructs a card from its spec tokens. Parsing is total, so an
// unrecognised token in a hand-edited file degrades to the default rather
// than failing the render.
func buildCard(spec config.CardSpec) *components.Card {
	children := []ui.Renderable{}
	for _, line := range strings.Split(spec.Body, "\n") {
		children = append(children, components.NewText(line))
	}

	card := components.NewCard(children...).
		WithVariant(components.ParseVariantToken(spec.Variant)).
		WithSize(components.ParseSizeToken(spec.Size)).
		WithHover(spec.Hover).
		WithFocus(spec.Focus)

	if spec.Padding != "" {
		card = card.WithPadding(spec.Padding)
	}
	if spec.Title != "" {
		card = card.WithTitle(spec.Title)
	}
	return card
}

func renderPlainGallery(out io.Writer, gallery *config.Gallery) {
	for _, spec := range gallery.Cards {
		if spec.Title != "" {
			fmt.Fprintf(out, "%s: %s\n", spec.Title, spec.Body)
			continue
		}
		fmt.Fprintln(out, spec.Body)
	}
}

func themeFor(name string) components.Theme {
	if name == "dark" {
		return components.DarkTheme()
	}
	return components.DefaultTheme()
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// builtinGallery covers the full token space: every variant, every padding,
// every size, plus the hover and focus states.
func builtinGallery() *config.Gallery {
	cards := []config.CardSpec{}

	for _, variant := range components.VariantTokens {
		cards = append(cards, config.CardSpec{
			Title:   "variant " + variant,
			Body:    "The " + variant + " preset.",
			Variant: variant,
		})
	}
	for _, padding := range components.PaddingTokens {
		cards = append(cards, config.CardSpec{
			Title:   "padding " + padding,
			Body:    "Interior spacing token " + padding + ".",
			Padding: padding,
		})
	}
	for _, size := range components.SizeTokens {
		cards = append(cards, config.CardSpec{
			Title: "size " + size,
			Body:  "Width preset " + size + ".",
			Size:  size,
		})
	}
	cards = append(cards,
		config.CardSpec{Title: "hover", Body: "Pointer over the card.", Hover: true},
		config.CardSpec{Title: "focus", Body: "Keyboard focus ring.", Focus: true},
	)

	return &config.Gallery{Cards: cards}
}
