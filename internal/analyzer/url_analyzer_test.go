package analyzer

import (
	"reflect"
	"testing"
)

func TestURLAnalyzer_IPAddress(t *testing.T) {
	a := NewURLAnalyzer()

	findings := a.Analyze("http://192.168.1.1/login")

	if !findings.HasIPAddress {
		t.Error("Expected IP-literal host to be detected")
	}
	if !findings.HasSuspiciousPattern {
		t.Error("Expected IP-literal host to set the suspicious pattern flag")
	}
	if findings.UsesHTTPS {
		t.Error("Expected http:// URL to report UsesHTTPS=false")
	}
}

func TestURLAnalyzer_HTTPSPrefix(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com", false},
		{"HTTPS://example.com", false}, // prefix check is case-sensitive
		{"ftp://example.com", false},
	}

	a := NewURLAnalyzer()
	for _, tt := range tests {
		findings := a.Analyze(tt.url)
		if findings.UsesHTTPS != tt.want {
			t.Errorf("Analyze(%q).UsesHTTPS = %v, want %v", tt.url, findings.UsesHTTPS, tt.want)
		}
	}
}

func TestURLAnalyzer_SuspiciousPatterns(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"userinfo obfuscation", "https://paypal.com@evil.example.com"},
		{"repeated hyphens", "https://my--site.example.com"},
		{"long digit run", "https://example.com/session/1234567890"},
		{"overlong label", "https://aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.example.com"},
	}

	a := NewURLAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !a.Analyze(tt.url).HasSuspiciousPattern {
				t.Errorf("Expected %q to be flagged as suspicious", tt.url)
			}
		})
	}

	if a.Analyze("https://example.com").HasSuspiciousPattern {
		t.Error("Expected a plain URL to have no suspicious pattern")
	}
}

func TestURLAnalyzer_ExcessiveSubdomains(t *testing.T) {
	a := NewURLAnalyzer()

	if !a.Analyze("https://a.b.c.d.example.com").HasExcessiveSubdomains {
		t.Error("Expected more than 4 host labels to be flagged")
	}
	if a.Analyze("https://www.example.com").HasExcessiveSubdomains {
		t.Error("Expected 3 host labels not to be flagged")
	}

	// Unparseable input skips the check silently instead of failing
	if a.Analyze("http://[broken").HasExcessiveSubdomains {
		t.Error("Expected unparseable URL to skip the subdomain check")
	}
}

func TestURLAnalyzer_KeywordScan(t *testing.T) {
	a := NewURLAnalyzer()

	findings := a.Analyze("https://secure-paypal-verify.com")

	// Matches are reported in keyword-list order, not occurrence order
	want := []string{"verify", "paypal", "secure"}
	if !reflect.DeepEqual(findings.MatchedKeywords, want) {
		t.Errorf("MatchedKeywords = %v, want %v", findings.MatchedKeywords, want)
	}
}

func TestURLAnalyzer_KeywordScanCaseInsensitive(t *testing.T) {
	a := NewURLAnalyzer()

	// Mixed-case occurrences count once per keyword, not per occurrence
	findings := a.Analyze("https://LOGIN.example.com/Login")

	want := []string{"login"}
	if !reflect.DeepEqual(findings.MatchedKeywords, want) {
		t.Errorf("MatchedKeywords = %v, want %v", findings.MatchedKeywords, want)
	}
}

func TestURLAnalyzer_GarbageInput(t *testing.T) {
	a := NewURLAnalyzer()

	// No validation precondition: arbitrary strings must produce findings
	findings := a.Analyze("::::not a url at all::::")

	if findings.UsesHTTPS || findings.HasIPAddress {
		t.Error("Expected no findings for garbage input")
	}
}
