package analyzer

import "strings"

// Spoof window: similarity must be strictly above the threshold but strictly
// below 1.0, so exact matches against a reference domain never flag.
const spoofSimilarityThreshold = 0.7

// DomainDetector compares hostnames against the fixed reference set of
// legitimate domains and scans for homograph character substitution
type DomainDetector struct {
	referenceDomains []string
	lookalikes       map[rune]rune
}

// NewDomainDetector creates a new DomainDetector using the fixed tables
func NewDomainDetector() *DomainDetector {
	return &DomainDetector{
		referenceDomains: legitimateDomains,
		lookalikes:       homographLookalikes,
	}
}

// Check runs both the spoof check and the homograph check on a hostname
func (d *DomainDetector) Check(domain string) DomainCheckFindings {
	findings := d.CheckSpoofing(domain)
	findings.IsHomograph = d.DetectHomograph(domain)
	return findings
}

// CheckSpoofing looks for edit-distance spoofing of a well-known domain.
// The reference list is iterated in declaration order and the first domain
// whose similarity falls inside the spoof window wins; this is intentionally
// first-match, not best-match.
func (d *DomainDetector) CheckSpoofing(domain string) DomainCheckFindings {
	findings := DomainCheckFindings{}

	// Normalize: lowercase, strip a leading www.
	normalized := strings.ToLower(domain)
	normalized = strings.TrimPrefix(normalized, "www.")

	for _, reference := range d.referenceDomains {
		distance := levenshteinDistance(normalized, reference)

		maxLen := len(normalized)
		if len(reference) > maxLen {
			maxLen = len(reference)
		}
		if maxLen == 0 {
			continue
		}

		similarity := 1.0 - float64(distance)/float64(maxLen)

		// Close but not identical
		if similarity > spoofSimilarityThreshold && similarity < 1.0 {
			findings.IsSpoofed = true
			findings.SimilarTo = reference
			findings.EditDistance = distance
			break
		}
	}

	return findings
}

// DetectHomograph reports whether the domain contains any lookalike
// character from the confusable table. This is a binary presence test with
// no position or count recorded; it is a best-effort signal, not a full
// per-script analysis.
func (d *DomainDetector) DetectHomograph(domain string) bool {
	for _, r := range domain {
		if _, ok := d.lookalikes[r]; ok {
			return true
		}
	}
	return false
}
