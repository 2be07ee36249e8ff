package editurl

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DisplayURL returns rawURL with a punycode host shown in Unicode. Only the
// host is rewritten; userinfo, path, query and fragment keep their original
// text. Anything that does not parse, or has no punycode label, is returned
// unchanged.
func DisplayURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	host := u.Hostname()
	if !strings.Contains(strings.ToLower(host), "xn--") {
		return rawURL
	}
	start, ok := hostOffset(rawURL, host)
	if !ok {
		return rawURL
	}
	unicode, err := idna.Display.ToUnicode(host)
	if err != nil {
		return rawURL
	}
	return rawURL[:start] + unicode + rawURL[start+len(host):]
}

// hostOffset finds host inside the authority of rawURL, after any userinfo.
func hostOffset(rawURL, host string) (int, bool) {
	i := strings.Index(rawURL, "//")
	if i < 0 {
		return 0, false
	}
	authority := rawURL[i+2:]
	if end := strings.IndexAny(authority, "/?#"); end >= 0 {
		authority = authority[:end]
	}
	start := i + 2 + strings.LastIndex(authority, "@") + 1
	if !strings.HasPrefix(rawURL[start:], host) {
		return 0, false
	}
	return start, true
}
