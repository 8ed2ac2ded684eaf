// Package inspect implements the inspect subcommand: a terminal
// preview of an Atom document using the same tolerant parsing as the
// converter, with entry HTML rendered as Markdown.
package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"atomrss/internal/source"
	"atomrss/internal/xmltree"
)

type Inspect struct {
	inputPath string
	limit     int
	mdc       *converter.Converter
}

func Command() *cobra.Command {
	i := &Inspect{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Preview the channel and entries of an Atom feed in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return i.run()
		},
	}

	cmd.Flags().StringVarP(&i.inputPath, "input", "i", "", "Path to the Atom XML file, or a .zip export containing it (required)")
	cmd.Flags().IntVarP(&i.limit, "limit", "n", 0, "Show at most this many entries (0 = all)")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (i *Inspect) run() error {
	data, name, err := source.ReadFile(i.inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	root, err := xmltree.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	i.mdc = newMarkdownConverter()

	printChannel(root)
	entries := root.All("entry")
	shown := len(entries)
	if i.limit > 0 && i.limit < shown {
		shown = i.limit
	}
	for _, entry := range entries[:shown] {
		i.printEntry(entry)
	}
	if shown < len(entries) {
		fmt.Println(EntryMetaStyle.Render(fmt.Sprintf("… and %d more entries", len(entries)-shown)))
	}
	return nil
}

func printChannel(root *xmltree.Element) {
	title := "(untitled feed)"
	if t := root.First("title"); t != nil {
		if s := strings.TrimSpace(t.Text()); s != "" {
			title = s
		}
	}
	fmt.Println(FeedTitleStyle.Render(title))
	if s := root.First("subtitle"); s != nil {
		if sub := strings.TrimSpace(s.Text()); sub != "" {
			fmt.Println(FeedDescStyle.Render(sub))
		}
	}
	fmt.Println(SpacerStyle.Render(strings.Repeat("─", 60)))
}

func (i *Inspect) printEntry(entry *xmltree.Element) {
	if t := entry.First("title"); t != nil {
		fmt.Println(EntryTitleStyle.Render(strings.TrimSpace(t.Text())))
	} else {
		fmt.Println(EntryTitleStyle.Render("(untitled entry)"))
	}

	var meta []string
	for _, name := range []string{"published", "updated"} {
		if el := entry.First(name); el != nil {
			if v := strings.TrimSpace(el.Text()); v != "" {
				meta = append(meta, name+" "+v)
				break
			}
		}
	}
	if l := entry.Find(func(e *xmltree.Element) bool {
		rel, _ := e.Attr("rel")
		return e.Name == "link" && rel == "alternate"
	}); l != nil {
		if href, ok := l.Attr("href"); ok {
			meta = append(meta, href)
		}
	}
	if len(meta) > 0 {
		fmt.Println(EntryMetaStyle.Render(strings.Join(meta, "  ")))
	}

	if c := entry.First("content"); c != nil {
		if body := strings.TrimSpace(c.Text()); body != "" {
			md, err := i.mdc.ConvertString(body)
			if err != nil {
				// content is third-party HTML; fall back to the raw text
				md = body
			}
			fmt.Println(strings.TrimSpace(md))
		}
	}
	fmt.Println(SpacerStyle.Render(strings.Repeat("─", 60)))
}

// newMarkdownConverter builds the HTML renderer for entry bodies.
// Images carry no weight in a terminal, so they render as a short
// placeholder instead of a dead link.
func newMarkdownConverter() *converter.Converter {
	mdc := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	mdc.Register.RendererFor("img", converter.TagTypeInline, renderImagePlaceholder, converter.PriorityEarly)
	return mdc
}

func renderImagePlaceholder(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
	alt := dom.GetAttributeOr(node, "alt", "")
	if alt == "" {
		alt = dom.GetAttributeOr(node, "src", "image")
	}
	w.WriteString("[image: ")
	w.WriteString(alt)
	w.WriteString("]")
	return converter.RenderSuccess
}
