// Package feed converts a single Atom document into an RSS 2.0
// document.
//
// The transform is a pure function over the input text: parse into a
// tolerant element tree, pick out the handful of channel and entry
// fields RSS has names for, and serialize a fresh document. Nothing is
// validated, fetched, or sanitized; unknown elements are ignored.
package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"atomrss/internal/xmltree"
)

// Channel field fallbacks, used when the source feed has no usable
// title, alternate link, or subtitle.
const (
	DefaultTitle       = "Atom to RSS Feed"
	DefaultLink        = "http://example.com"
	DefaultDescription = "Converted from Atom feed"
)

// ChannelDefaults overrides the built-in channel fallbacks. Zero
// fields keep the stock values; real source values always win over
// either.
type ChannelDefaults struct {
	Title       string
	Link        string
	Description string
}

// Options tunes the transform. The zero value is the stock conversion.
type Options struct {
	Channel ChannelDefaults
	Indent  string // serializer indent, default two spaces
}

// BadDate records an entry whose published/updated text was present
// but not parseable; its pubDate was omitted and conversion went on.
type BadDate struct {
	Item  int    // zero-based position of the item in the channel
	Value string // the date text as found in the source
}

// Result is a successful conversion.
type Result struct {
	XML      []byte // the RSS 2.0 document, UTF-8
	Title    string // resolved channel title (source value or fallback)
	Items    int    // number of items in the channel
	BadDates []BadDate
}

// ParseError reports that the input was not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing atom document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Transform converts Atom text into RSS 2.0 text. It returns a
// *ParseError when data is not well-formed XML; every other source
// irregularity is absorbed per field (absent fields stay absent,
// broken entry dates drop their pubDate).
func Transform(data []byte, opts Options) (*Result, error) {
	root, err := xmltree.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	doc := rssDoc{
		Version:   "2.0",
		ContentNS: contentNS,
		Channel: rssChannel{
			Title:       channelText(root.First("title"), opts.Channel.Title, DefaultTitle),
			Link:        channelLink(root, opts.Channel.Link),
			Description: channelText(root.First("subtitle"), opts.Channel.Description, DefaultDescription),
		},
	}

	res := &Result{Title: doc.Channel.Title}
	for i, entry := range root.All("entry") {
		doc.Channel.Items = append(doc.Channel.Items, convertEntry(entry, i, res))
	}
	res.Items = len(doc.Channel.Items)

	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	out, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("serializing rss document: %w", err)
	}
	res.XML = append(append([]byte(xml.Header), out...), '\n')
	return res, nil
}

// channelText resolves one of the three always-present channel fields:
// trimmed source text, else the configured fallback, else the stock
// default.
func channelText(el *xmltree.Element, fallback, stock string) string {
	if el != nil {
		if s := strings.TrimSpace(el.Text()); s != "" {
			return s
		}
	}
	if fallback != "" {
		return fallback
	}
	return stock
}

// channelLink finds the feed's alternate link href, with fallbacks.
func channelLink(root *xmltree.Element, fallback string) string {
	if el := alternateLink(root); el != nil {
		if href, ok := el.Attr("href"); ok && href != "" {
			return href
		}
	}
	if fallback != "" {
		return fallback
	}
	return DefaultLink
}

// alternateLink returns the first descendant link with rel="alternate",
// in document order, whether or not it carries an href.
func alternateLink(e *xmltree.Element) *xmltree.Element {
	return e.Find(func(d *xmltree.Element) bool {
		rel, _ := d.Attr("rel")
		return d.Name == "link" && rel == "alternate"
	})
}

func convertEntry(entry *xmltree.Element, index int, res *Result) rssItem {
	it := rssItem{}

	if t := entry.First("title"); t != nil {
		it.Title = strings.TrimSpace(t.Text())
	}

	if l := alternateLink(entry); l != nil {
		if href, ok := l.Attr("href"); ok {
			it.Link = href
		}
	}

	// published wins, updated is the fallback
	var dateStr string
	if p := entry.First("published"); p != nil {
		dateStr = strings.TrimSpace(p.Text())
	}
	if dateStr == "" {
		if u := entry.First("updated"); u != nil {
			dateStr = strings.TrimSpace(u.Text())
		}
	}
	if dateStr != "" {
		if t, ok := parseDate(dateStr); ok {
			it.PubDate = formatRFC822(t)
		} else {
			res.BadDates = append(res.BadDates, BadDate{Item: index, Value: dateStr})
		}
	}

	if c := entry.First("content"); c != nil {
		if body := c.Text(); body != "" {
			it.Content = newContent(body)
		}
	}
	return it
}
