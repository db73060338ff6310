package analyzer

// ThreatLevel classifies the accumulated risk score
type ThreatLevel string

// Threat level constants, ordered from least to most severe
const (
	LevelSafe       ThreatLevel = "safe"
	LevelSuspicious ThreatLevel = "suspicious"
	LevelDangerous  ThreatLevel = "dangerous"
	LevelMalicious  ThreatLevel = "malicious"
)

// AnalysisRequest is a single evaluation request
// Content is optional; an empty string means no content was supplied
type AnalysisRequest struct {
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}

// URLStructuralFindings holds the results of the structural URL inspection
type URLStructuralFindings struct {
	HasSuspiciousPattern   bool     `json:"has_suspicious_pattern"`
	UsesHTTPS              bool     `json:"uses_https"`
	HasIPAddress           bool     `json:"has_ip_address"`
	HasExcessiveSubdomains bool     `json:"has_excessive_subdomains"`
	MatchedKeywords        []string `json:"matched_keywords,omitempty"` // in keyword-list order
}

// DomainCheckFindings holds the results of the domain similarity checks
type DomainCheckFindings struct {
	IsKnownMalicious bool   `json:"is_known_malicious"`
	IsSpoofed        bool   `json:"is_spoofed"`
	SimilarTo        string `json:"similar_to,omitempty"`    // reference domain that triggered the spoof check
	EditDistance     int    `json:"edit_distance,omitempty"` // only set when IsSpoofed is true
	IsHomograph      bool   `json:"is_homograph"`
}

// ContentFindings holds the results of the page/email content scan
type ContentFindings struct {
	HasUrgencyKeywords   bool    `json:"has_urgency_keywords"`
	HasFinancialKeywords bool    `json:"has_financial_keywords"`
	HasMismatchedLinks   bool    `json:"has_mismatched_links"`
	UrgencyScore         float64 `json:"urgency_score"`   // in [0,1]
	SuspicionScore       float64 `json:"suspicion_score"` // in [0,1]
	Language             string  `json:"language,omitempty"` // ISO 639-3 code, best effort
}

// ThreatReport is the aggregated verdict for one URL
// It is immutable once produced and safe to share across goroutines
type ThreatReport struct {
	URL         string      `json:"url"`
	IsSafe      bool        `json:"is_safe"`
	ThreatLevel ThreatLevel `json:"threat_level"`
	Confidence  float64     `json:"confidence"` // min(raw score, 1.0)

	// Threats lists a human-readable explanation per triggered condition,
	// in evaluation order (structural, domain, content)
	Threats []string `json:"threats"`

	// Recommendations are selected purely by threat level
	Recommendations []string `json:"recommendations"`

	// Embedded analyzer findings, kept for audit
	URLFindings     URLStructuralFindings `json:"url_findings"`
	DomainFindings  DomainCheckFindings   `json:"domain_findings"`
	ContentFindings *ContentFindings      `json:"content_findings,omitempty"` // nil when no content was supplied
}
