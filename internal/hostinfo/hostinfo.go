// Package hostinfo derives offline metadata about a hostname for audit
// display: IDNA forms, registrable domain, and script composition. It never
// performs lookups and never feeds the scoring engine.
package hostinfo

import (
	"strings"
	"unicode"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// Info describes a hostname's encoding and script composition
type Info struct {
	Host              string `json:"host"`                         // normalized lowercase input
	ASCII             string `json:"ascii,omitempty"`              // IDNA ASCII (punycode) form
	Unicode           string `json:"unicode,omitempty"`            // IDNA Unicode form
	RegistrableDomain string `json:"registrable_domain,omitempty"` // eTLD+1
	IsPunycode        bool   `json:"is_punycode"`                  // host carries an xn-- label
	HasMixedScript    bool   `json:"has_mixed_script"`             // labels mix Unicode scripts
}

// Inspect derives metadata for a hostname. Every field is best effort;
// conversion failures leave the corresponding field empty rather than
// producing an error.
func Inspect(host string) Info {
	normalized := strings.ToLower(strings.TrimSpace(host))

	info := Info{
		Host:       normalized,
		IsPunycode: strings.Contains(normalized, "xn--"),
	}

	if converted, err := idna.Lookup.ToASCII(normalized); err == nil && converted != "" {
		info.ASCII = converted
	}
	if converted, err := idna.Lookup.ToUnicode(normalized); err == nil && converted != "" {
		info.Unicode = converted
	}

	// Registrable domain from the ASCII form first, Unicode form as fallback
	if info.ASCII != "" {
		if value, err := publicsuffix.EffectiveTLDPlusOne(info.ASCII); err == nil {
			info.RegistrableDomain = strings.ToLower(value)
		}
	}
	if info.RegistrableDomain == "" && info.Unicode != "" {
		if value, err := publicsuffix.EffectiveTLDPlusOne(info.Unicode); err == nil {
			info.RegistrableDomain = strings.ToLower(value)
		}
	}

	decoded := info.Unicode
	if decoded == "" {
		decoded = normalized
	}
	info.HasMixedScript = hasMixedScript(decoded)

	return info
}

// hasMixedScript reports whether the host contains characters from two or
// more Unicode scripts
func hasMixedScript(host string) bool {
	if host == "" {
		return false
	}

	scripts := make(map[string]struct{})
	for _, label := range strings.Split(host, ".") {
		for _, r := range label {
			script := detectScript(r)
			if script == "" {
				continue
			}
			scripts[script] = struct{}{}
			if len(scripts) >= 2 {
				return true
			}
		}
	}

	return false
}

// detectScript categorizes a rune by its Unicode script grouping
func detectScript(r rune) string {
	switch {
	case unicode.In(r, unicode.Latin):
		return "latin"
	case unicode.In(r, unicode.Cyrillic):
		return "cyrillic"
	case unicode.In(r, unicode.Greek):
		return "greek"
	case unicode.In(r, unicode.Hiragana):
		return "hiragana"
	case unicode.In(r, unicode.Katakana):
		return "katakana"
	case unicode.In(r, unicode.Han):
		return "han"
	default:
		return ""
	}
}
