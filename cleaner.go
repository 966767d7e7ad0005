package jobscrape

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxDescriptionChars bounds descriptions handed to downstream consumers.
const DefaultMaxDescriptionChars = 5000

// DefaultDenylist returns boilerplate patterns stripped from extracted text.
// Patterns are matched case-insensitively.
func DefaultDenylist() []string {
	return []string{
		`we use cookies[^.\n]*\.?`,
		`accept (all )?cookies`,
		`cookie (policy|settings|preferences)`,
		`sign in to (continue|apply|view this job|see who you know)`,
		`join (now )?or sign in`,
		`already on linkedin\?`,
		`new to linkedin\?`,
		`skip to main content`,
		`\bshow (more|less)\b`,
		`privacy policy`,
		`terms of (service|use)`,
		`©[^\n]*?all rights reserved\.?`,
		`\bpowered by\b`,
		`\bloading\.\.\.`,
		`(base )?pay range\s*\$[\d,]+(\.\d+)?\s*-\s*\$[\d,]+(\.\d+)?\s*/?\s*yr`,
		`pay found in job post`,
		`retrieved from the description\.?`,
	}
}

// Cleaner normalizes extracted text. Cleaning is idempotent:
// Clean(Clean(s)) == Clean(s).
type Cleaner struct {
	denylist []*regexp.Regexp
	maxChars int
}

// NewCleaner compiles the denylist patterns. A maxChars of zero disables
// truncation. Returns ECONFIG if a pattern does not compile.
func NewCleaner(denylist []string, maxChars int) (*Cleaner, error) {
	if maxChars < 0 {
		return nil, Errorf(ECONFIG, "cleaner: max chars must not be negative")
	}
	c := &Cleaner{maxChars: maxChars}
	for _, pattern := range denylist {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, Errorf(ECONFIG, "cleaner: invalid denylist pattern %q: %v", pattern, err)
		}
		c.denylist = append(c.denylist, re)
	}
	return c, nil
}

// Clean strips boilerplate, collapses whitespace and blank lines, and
// truncates to the character budget at a word boundary.
func (c *Cleaner) Clean(text string) string {
	text = norm.NFKC.String(text)

	// Removing a phrase can join two fragments into a new match, or put a
	// combining mark next to a new base letter, so strip and renormalize
	// until nothing changes.
	text = collapseWhitespace(text)
	for {
		next := collapseWhitespace(norm.NFKC.String(c.strip(text)))
		if next == text {
			break
		}
		text = next
	}

	return truncateWords(text, c.maxChars)
}

// CleanLine cleans a short single-line field such as a title or company.
func (c *Cleaner) CleanLine(text string) string {
	text = norm.NFKC.String(text)
	return strings.Join(strings.Fields(text), " ")
}

func (c *Cleaner) strip(text string) string {
	for _, re := range c.denylist {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

// collapseWhitespace trims every line, collapses runs of horizontal
// whitespace to one space and keeps at most one blank line between blocks.
func collapseWhitespace(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.FieldsFunc(line, isHorizontalSpace), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func isHorizontalSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// truncateWords cuts text to at most max runes, backing up to the last
// whitespace so no word is split.
func truncateWords(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	all := []rune(text)
	if unicode.IsSpace(all[max]) {
		return strings.TrimRightFunc(string(all[:max]), unicode.IsSpace)
	}
	runes := all[:max]
	cut := len(runes)
	for i := len(runes) - 1; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}
	return strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace)
}
