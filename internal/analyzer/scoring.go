package analyzer

// Score weights per triggered condition. Contributions are purely additive
// and not mutually exclusive, with one exception: an IP-literal host scores
// only the IP weight, not the generic suspicious-pattern weight on top.
const (
	weightSuspiciousPattern = 0.3
	weightNoHTTPS           = 0.2
	weightIPAddress         = 0.4
	weightPerKeyword        = 0.2
	weightMalformedURL      = 0.5
	weightBlacklisted       = 1.0
	weightSpoofed           = 0.8
	weightHomograph         = 0.7
	weightUrgency           = 0.3
	weightFinancial         = 0.3
	weightMismatchedLinks   = 0.4
)

// Classification thresholds, applied to the unclamped raw score
const (
	thresholdMalicious  = 0.8
	thresholdDangerous  = 0.5
	thresholdSuspicious = 0.3
)

// classifyThreatLevel maps a raw accumulated score to a threat level.
// The mapping is a monotonic step function of the score.
func classifyThreatLevel(rawScore float64) ThreatLevel {
	switch {
	case rawScore >= thresholdMalicious:
		return LevelMalicious
	case rawScore >= thresholdDangerous:
		return LevelDangerous
	case rawScore >= thresholdSuspicious:
		return LevelSuspicious
	default:
		return LevelSafe
	}
}

// clampConfidence converts a raw score into the reported confidence
func clampConfidence(rawScore float64) float64 {
	if rawScore > 1.0 {
		return 1.0
	}
	return rawScore
}
