package html

import (
	"regexp"
	"strings"
)

// Pre-compiled regular expressions, applied in declaration order.
// Block patterns are non-greedy so each removes the shortest enclosed span.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	navTag       = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	footerTag    = regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`)
	headerTag    = regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// removals lists the block patterns stripped before tag removal.
var removals = []*regexp.Regexp{scriptTag, styleTag, navTag, footerTag, headerTag, htmlComments}

// Reduce converts raw markup into a single line of text.
// Plain-text markers such as the crawler's page separator pass through intact,
// apart from whitespace collapsing.
func Reduce(raw string) string {
	content := raw
	for _, re := range removals {
		content = re.ReplaceAllString(content, "")
	}

	content = allTags.ReplaceAllString(content, " ")
	content = whitespace.ReplaceAllString(content, " ")

	return strings.TrimSpace(content)
}
