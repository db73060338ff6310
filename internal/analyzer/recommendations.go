package analyzer

// Recommendation lists are fixed per threat level. Selection depends only on
// the level, not on which specific threats fired.
var recommendationsByLevel = map[ThreatLevel][]string{
	LevelMalicious: {
		"Do not visit this URL",
		"Block the sender and report the message as phishing",
		"Delete the message without clicking any links",
	},
	LevelDangerous: {
		"Avoid visiting this URL",
		"Verify the request through a separate, trusted channel",
		"Navigate to the official site directly instead of using this link",
	},
	LevelSuspicious: {
		"Hover over links to preview the real destination before clicking",
		"Contact the sender directly to confirm they sent this",
	},
	LevelSafe: {
		"URL appears safe, but always exercise caution with unexpected links",
	},
}

// recommendationsFor returns the fixed recommendation list for a level
func recommendationsFor(level ThreatLevel) []string {
	return recommendationsByLevel[level]
}
