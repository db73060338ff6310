package analyzer

// Reference tables for all analyzers. Constructed once at process start and
// shared read-only across concurrent evaluations.

// suspiciousURLKeywords are scanned case-insensitively against the whole URL.
// Matches are reported in this order, once per keyword.
var suspiciousURLKeywords = []string{
	"verify", "account", "suspended", "urgent", "security",
	"update", "confirm", "login", "password", "banking",
	"paypal", "amazon", "microsoft", "apple", "google",
	"secure", "alert",
}

// legitimateDomains is the fixed reference set for the spoof check.
// Declaration order matters: the spoof check reports the first reference
// domain whose similarity lands inside the spoof window.
var legitimateDomains = []string{
	"google.com",
	"facebook.com",
	"amazon.com",
	"microsoft.com",
	"apple.com",
	"paypal.com",
	"netflix.com",
	"linkedin.com",
	"twitter.com",
	"instagram.com",
	"github.com",
	"stackoverflow.com",
}

// homographLookalikes maps confusable characters to the Latin letter they
// imitate. Only cross-script characters are listed: ASCII substitutions such
// as 0 for o, or 1 and l for i, are already caught by the edit-distance
// spoof check, and treating them as homograph triggers would flag nearly
// every real domain.
var homographLookalikes = map[rune]rune{
	'а': 'a', // Cyrillic а
	'α': 'a', // Greek α
	'е': 'e', // Cyrillic е
	'ε': 'e', // Greek ε
	'о': 'o', // Cyrillic о
	'ο': 'o', // Greek ο
	'і': 'i', // Cyrillic і
	'ι': 'i', // Greek ι
	'с': 'c', // Cyrillic с
	'ϲ': 'c', // Greek ϲ
}

// urgencyKeywords indicate pressure tactics in page or email content
var urgencyKeywords = []string{
	"urgent", "immediately", "act now", "limited time", "expires",
	"suspended", "locked", "verify now", "click here", "confirm",
	"unusual activity", "security alert", "action required",
}

// financialKeywords indicate money or payment lures in content
var financialKeywords = []string{
	"refund", "payment", "invoice", "transaction", "account",
	"credit card", "bank", "wire transfer", "prize", "winner",
	"claim", "reward", "bonus", "free money",
}

// maliciousDomains is the hardcoded exact-match blacklist. Hostnames are
// compared case-sensitively; this is a fixed table, not a live feed.
var maliciousDomains = map[string]struct{}{
	"malware-delivery.net":    {},
	"phishing-portal.com":     {},
	"credential-harvest.org":  {},
	"fake-bank-login.com":     {},
	"account-verify-now.net":  {},
	"secure-update-check.com": {},
}
