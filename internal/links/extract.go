// Package links pulls share links out of free text and fingerprints the
// records decoded from them.
package links

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// Extractor finds links of a fixed set of schemes.
type Extractor struct {
	re *regexp.Regexp
}

func NewExtractor(schemes []string) (*Extractor, error) {
	if len(schemes) == 0 {
		return nil, fmt.Errorf("no schemes to extract")
	}
	quoted := make([]string, len(schemes))
	for i, s := range schemes {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(s))
	}
	re, err := regexp.Compile(`\b(` + strings.Join(quoted, "|") + `)://[a-zA-Z0-9_\-\.\:@\?=&%#+/\[\]~]+`)
	if err != nil {
		return nil, err
	}
	return &Extractor{re: re}, nil
}

// Extract returns the links in text, in order of first appearance,
// without duplicates.
func (e *Extractor) Extract(text string) []string {
	var links []string
	text = strings.ReplaceAll(text, "\r\n", "\n")
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		for _, match := range e.re.FindAllString(line, -1) {
			clean := strings.TrimRight(match, ".,;)\"")
			if clean != "" {
				links = append(links, clean)
			}
		}
	}
	return deduplicate(links)
}

// Scheme returns the lower-cased scheme of link, or "" if it has none.
func Scheme(link string) string {
	s, _, ok := strings.Cut(link, "://")
	if !ok {
		return ""
	}
	return strings.ToLower(s)
}

func deduplicate(input []string) []string {
	keys := make(map[string]bool)
	list := []string{}
	for _, entry := range input {
		if !keys[entry] {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	return list
}
