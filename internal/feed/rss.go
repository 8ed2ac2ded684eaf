package feed

import "encoding/xml"

// contentNS is the RSS content module namespace, declared on the root
// unconditionally so content:encoded is always resolvable.
const contentNS = "http://purl.org/rss/1.0/modules/content/"

// rssDoc is the serialized shape of the output document.
type rssDoc struct {
	XMLName   xml.Name `xml:"rss"`
	Version   string   `xml:"version,attr"`
	ContentNS string   `xml:"xmlns:content,attr"`
	Channel   rssChannel
}

type rssChannel struct {
	XMLName     xml.Name `xml:"channel"`
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Items       []rssItem
}

// rssItem holds one converted entry. Optional fields carry omitempty
// so an absent source field yields an absent element, not an empty
// placeholder.
type rssItem struct {
	XMLName xml.Name    `xml:"item"`
	Title   string      `xml:"title,omitempty"`
	Link    string      `xml:"link,omitempty"`
	PubDate string      `xml:"pubDate,omitempty"`
	Content *rssContent `xml:"content:encoded,omitempty"`
}

// rssContent carries a hand-escaped CDATA block. innerxml is written
// verbatim on marshal, which keeps the CDATA wrapper out of the
// library's own escaping.
type rssContent struct {
	Raw string `xml:",innerxml"`
}

// newContent wraps an entry body in a CDATA section, splitting any
// embedded "]]>" first.
func newContent(body string) *rssContent {
	return &rssContent{Raw: "<![CDATA[" + EscapeCDATA(body) + "]]>"}
}
