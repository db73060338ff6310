package analyzer

import (
	"net/url"
	"regexp"
	"strings"
)

// Precompiled structural patterns
var (
	ipAddressPattern = regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)
	longLabelPattern = regexp.MustCompile(`[a-z0-9-]{30,}`)
	digitRunPattern  = regexp.MustCompile(`\d{5,}`)
)

// URLAnalyzer inspects raw URL strings for structural red flags
type URLAnalyzer struct {
	keywords []string
}

// NewURLAnalyzer creates a new URLAnalyzer using the fixed keyword table
func NewURLAnalyzer() *URLAnalyzer {
	return &URLAnalyzer{keywords: suspiciousURLKeywords}
}

// Analyze evaluates every structural check against the raw URL string.
// The input does not need to be a valid URL; this analyzer cannot fail.
func (a *URLAnalyzer) Analyze(rawURL string) URLStructuralFindings {
	findings := URLStructuralFindings{}

	// IP-literal host: a dotted quad anywhere in the URL
	if ipAddressPattern.MatchString(rawURL) {
		findings.HasIPAddress = true
		findings.HasSuspiciousPattern = true
	}

	// Overlong label: a run of 30+ lowercase alphanumerics/hyphens
	if longLabelPattern.MatchString(rawURL) {
		findings.HasSuspiciousPattern = true
	}

	// @ in a URL hides the real host behind fake userinfo
	if strings.Contains(rawURL, "@") {
		findings.HasSuspiciousPattern = true
	}

	// Repeated hyphens
	if strings.Contains(rawURL, "--") {
		findings.HasSuspiciousPattern = true
	}

	// Long digit runs
	if digitRunPattern.MatchString(rawURL) {
		findings.HasSuspiciousPattern = true
	}

	// Exact scheme prefix, case-sensitive
	findings.UsesHTTPS = strings.HasPrefix(rawURL, "https://")

	// Subdomain count: skipped silently when the URL doesn't parse.
	// The aggregator handles malformed URLs separately.
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Hostname() != "" {
		labels := strings.Split(parsed.Hostname(), ".")
		if len(labels) > 4 {
			findings.HasExcessiveSubdomains = true
		}
	}

	// Keyword scan over the whole URL, case-insensitive, reported in
	// list order with one entry per keyword regardless of occurrences
	lowered := strings.ToLower(rawURL)
	for _, keyword := range a.keywords {
		if strings.Contains(lowered, keyword) {
			findings.MatchedKeywords = append(findings.MatchedKeywords, keyword)
		}
	}

	return findings
}
