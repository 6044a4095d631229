package runtime

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodePath percent-encodes a value for insertion into a URL path segment.
// The escape set is the WHATWG path-segment set plus '/' and '%', so a
// literal '%' in the input is escaped rather than mistaken for an existing
// escape sequence. There is no decoding counterpart; this is a one-way
// boundary transform.
//
// See https://url.spec.whatwg.org/#url-path-segment-string
func EncodePath(segment string) string {
	var b strings.Builder
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if pathSegmentEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func pathSegmentEscape(c byte) bool {
	if c < 0x20 || c > 0x7e {
		return true
	}
	switch c {
	case ' ', '"', '#', '<', '>', '?', '`', '{', '}', '/', '%':
		return true
	}
	return false
}
