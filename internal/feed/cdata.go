package feed

import "strings"

// EscapeCDATA makes text safe for inclusion in a single CDATA section
// by splitting every literal "]]>" terminator across two sections:
//
//	]]>  becomes  ]]]]><![CDATA[>
//
// Decoding the resulting "<![CDATA[" + escaped + "]]>" block per XML
// rules reproduces the input byte for byte.
func EscapeCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
