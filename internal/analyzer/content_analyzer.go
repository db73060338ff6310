package analyzer

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/net/html"
)

// Keyword matches are capped at this count when computing scores, so five or
// more matches saturate the score at 1.0
const keywordScoreCap = 5.0

// anchorLink is one extracted <a href="...">text</a> pair
type anchorLink struct {
	href string
	text string
}

// ContentAnalyzer scans optional page or email text for social-engineering
// language and mismatched link text
type ContentAnalyzer struct {
	urgencyTerms   []string
	financialTerms []string
}

// NewContentAnalyzer creates a new ContentAnalyzer using the fixed term tables
func NewContentAnalyzer() *ContentAnalyzer {
	return &ContentAnalyzer{
		urgencyTerms:   urgencyKeywords,
		financialTerms: financialKeywords,
	}
}

// Analyze scans raw text/HTML content. It cannot fail; callers skip it
// entirely when no content was supplied rather than passing empty input.
func (a *ContentAnalyzer) Analyze(content string) ContentFindings {
	findings := ContentFindings{}

	lowered := strings.ToLower(content)

	// Count urgency and financial term matches
	urgencyCount := countMatches(lowered, a.urgencyTerms)
	financialCount := countMatches(lowered, a.financialTerms)

	findings.HasUrgencyKeywords = urgencyCount > 0
	findings.HasFinancialKeywords = financialCount > 0

	// Each score saturates at 1.0 after five matches. The financial score
	// only feeds the combined suspicion score and is not reported on its own.
	findings.UrgencyScore = keywordScore(urgencyCount)
	financialScore := keywordScore(financialCount)
	findings.SuspicionScore = (findings.UrgencyScore + financialScore) / 2

	// Mismatched links: visible text that looks like a URL pointing at a
	// different destination
	findings.HasMismatchedLinks = hasMismatchedLinks(content)

	// Best-effort language tag for audit display; unreliable guesses on
	// short content are dropped
	if info := whatlanggo.Detect(content); info.IsReliable() {
		findings.Language = whatlanggo.LangToString(info.Lang)
	}

	return findings
}

// countMatches counts how many terms occur in the lowercased content,
// once per term
func countMatches(lowered string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			count++
		}
	}
	return count
}

// keywordScore converts a match count into a score in [0,1]
func keywordScore(count int) float64 {
	score := float64(count) / keywordScoreCap
	if score > 1.0 {
		return 1.0
	}
	return score
}

// hasMismatchedLinks extracts anchor tags and flags the classic
// bait-and-switch: display text containing "http" while the actual href
// does not contain that text
func hasMismatchedLinks(content string) bool {
	for _, link := range extractAnchors(content) {
		text := strings.TrimSpace(link.text)
		if text == "" {
			continue
		}
		if strings.Contains(text, "http") && !strings.Contains(link.href, text) {
			return true
		}
	}
	return false
}

// extractAnchors parses the content as HTML and collects href/text pairs.
// The parser is forgiving, so arbitrary text never produces an error.
func extractAnchors(content string) []anchorLink {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var links []anchorLink
	var traverse func(n *html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			link := anchorLink{}
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					link.href = attr.Val
				}
			}
			link.text = nodeText(n)
			if link.href != "" {
				links = append(links, link)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return links
}

// nodeText collects the text content of a node and its children
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}
