package analyzer

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Aggregator is the public facade of the threat-classification engine.
// It runs the applicable analyzers, accumulates a weighted score, classifies
// the result into a threat level, and emits recommendations.
//
// Every input, however malformed, produces a best-effort ThreatReport; the
// facade never returns an error. All state is read-only after construction,
// so a single Aggregator is safe for concurrent use.
type Aggregator struct {
	urls      *URLAnalyzer
	domains   *DomainDetector
	content   *ContentAnalyzer
	blacklist map[string]struct{}
	cache     *ReportCache // nil disables caching
}

// NewAggregator creates a new Aggregator. The cache is owned by the caller
// and may be nil to disable report caching.
func NewAggregator(cache *ReportCache) *Aggregator {
	return &Aggregator{
		urls:      NewURLAnalyzer(),
		domains:   NewDomainDetector(),
		content:   NewContentAnalyzer(),
		blacklist: maliciousDomains,
		cache:     cache,
	}
}

// Check evaluates a single URL with optional content. An empty content
// string means no content was supplied and the content analyzer is skipped.
func (a *Aggregator) Check(rawURL, content string) *ThreatReport {
	if a.cache != nil {
		if report, ok := a.cache.Get(requestFingerprint(rawURL, content)); ok {
			return report
		}
	}

	report := &ThreatReport{
		URL:     rawURL,
		Threats: []string{},
	}

	var score float64

	// Step 1: structural URL analysis, always
	report.URLFindings = a.urls.Analyze(rawURL)
	score += a.scoreStructural(report)

	// Step 2: domain checks, only when the URL yields a hostname.
	// A malformed URL is recorded as a threat with a fixed penalty and
	// evaluation continues; it never aborts the report.
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		report.Threats = append(report.Threats, "Invalid URL format")
		score += weightMalformedURL
	} else {
		score += a.scoreDomain(report, parsed.Hostname())
	}

	// Step 3: content analysis, only when content was supplied
	if content != "" {
		findings := a.content.Analyze(content)
		report.ContentFindings = &findings
		score += a.scoreContent(report, findings)
	}

	// Step 4: classify on the unclamped score, clamp only the confidence
	report.ThreatLevel = classifyThreatLevel(score)
	report.Confidence = clampConfidence(score)
	report.IsSafe = report.ThreatLevel == LevelSafe
	report.Recommendations = recommendationsFor(report.ThreatLevel)

	if a.cache != nil {
		a.cache.Set(requestFingerprint(rawURL, content), report)
	}

	return report
}

// CheckRequest evaluates a single AnalysisRequest
func (a *Aggregator) CheckRequest(req AnalysisRequest) *ThreatReport {
	return a.Check(req.URL, req.Content)
}

// BatchCheck evaluates each URL independently and concurrently. Results
// preserve input order and there is no shared state between elements.
func (a *Aggregator) BatchCheck(urls []string) []*ThreatReport {
	reports := make([]*ThreatReport, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			reports[i] = a.Check(u, "")
		}(i, u)
	}
	wg.Wait()

	return reports
}

// scoreStructural accumulates score and threat strings from the URL findings.
// An IP-literal host scores the IP weight instead of the generic
// suspicious-pattern weight, never both.
func (a *Aggregator) scoreStructural(report *ThreatReport) float64 {
	findings := report.URLFindings
	var score float64

	if findings.HasIPAddress {
		score += weightIPAddress
		report.Threats = append(report.Threats, "URL uses a raw IP address instead of a domain name")
	} else if findings.HasSuspiciousPattern {
		score += weightSuspiciousPattern
		report.Threats = append(report.Threats, "URL contains suspicious structural patterns")
	}

	if !findings.UsesHTTPS {
		score += weightNoHTTPS
		report.Threats = append(report.Threats, "Connection is not encrypted (no HTTPS)")
	}

	if len(findings.MatchedKeywords) > 0 {
		score += weightPerKeyword * float64(len(findings.MatchedKeywords))
		report.Threats = append(report.Threats,
			"Contains suspicious keywords: "+strings.Join(findings.MatchedKeywords, ", "))
	}

	return score
}

// scoreDomain runs the blacklist and similarity checks against a hostname
func (a *Aggregator) scoreDomain(report *ThreatReport, hostname string) float64 {
	var score float64

	report.DomainFindings = a.domains.Check(hostname)

	// Exact-match blacklist, case-sensitive
	if _, blacklisted := a.blacklist[hostname]; blacklisted {
		report.DomainFindings.IsKnownMalicious = true
		score += weightBlacklisted
		report.Threats = append(report.Threats, "Domain is on the known-malicious blacklist")
	}

	if report.DomainFindings.IsSpoofed {
		score += weightSpoofed
		report.Threats = append(report.Threats, fmt.Sprintf(
			"Domain closely resembles %s (edit distance %d)",
			report.DomainFindings.SimilarTo, report.DomainFindings.EditDistance))
	}

	if report.DomainFindings.IsHomograph {
		score += weightHomograph
		report.Threats = append(report.Threats, "Domain contains lookalike characters (possible homograph attack)")
	}

	return score
}

// scoreContent accumulates score and threat strings from the content findings
func (a *Aggregator) scoreContent(report *ThreatReport, findings ContentFindings) float64 {
	var score float64

	if findings.HasUrgencyKeywords {
		score += weightUrgency
		report.Threats = append(report.Threats, "Content uses urgency or pressure language")
	}

	if findings.HasFinancialKeywords {
		score += weightFinancial
		report.Threats = append(report.Threats, "Content requests financial or payment information")
	}

	if findings.HasMismatchedLinks {
		score += weightMismatchedLinks
		report.Threats = append(report.Threats, "Link text does not match the actual link destination")
	}

	return score
}
