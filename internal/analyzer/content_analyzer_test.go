package analyzer

import (
	"math"
	"testing"
)

func TestContentAnalyzer_UrgencyScoring(t *testing.T) {
	a := NewContentAnalyzer()

	// Two urgency terms, no financial terms
	findings := a.Analyze("Please act IMMEDIATELY, your access expires today.")

	if !findings.HasUrgencyKeywords {
		t.Error("Expected urgency keywords to be detected")
	}
	if findings.HasFinancialKeywords {
		t.Error("Expected no financial keywords")
	}
	if math.Abs(findings.UrgencyScore-0.4) > 1e-9 {
		t.Errorf("UrgencyScore = %f, want 0.4", findings.UrgencyScore)
	}
	// Suspicion is the mean of urgency and the internal financial score
	if math.Abs(findings.SuspicionScore-0.2) > 1e-9 {
		t.Errorf("SuspicionScore = %f, want 0.2", findings.SuspicionScore)
	}
}

func TestContentAnalyzer_ScoreSaturation(t *testing.T) {
	a := NewContentAnalyzer()

	// Six urgency terms saturate the score at 1.0
	content := "urgent immediately act now limited time expires suspended"
	findings := a.Analyze(content)

	if findings.UrgencyScore != 1.0 {
		t.Errorf("UrgencyScore = %f, want 1.0", findings.UrgencyScore)
	}
}

func TestContentAnalyzer_FinancialKeywords(t *testing.T) {
	a := NewContentAnalyzer()

	findings := a.Analyze("Your refund is ready, confirm your credit card to claim the prize.")

	if !findings.HasFinancialKeywords {
		t.Error("Expected financial keywords to be detected")
	}
}

func TestContentAnalyzer_MismatchedLinks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			"display text points elsewhere",
			`<a href="http://evil.example.net/steal">https://paypal.com/account</a>`,
			true,
		},
		{
			"display text matches destination",
			`<a href="https://paypal.com/account">https://paypal.com/account</a>`,
			false,
		},
		{
			"plain label text",
			`<a href="http://anything.example.com">Click here</a>`,
			false,
		},
		{
			"no anchors at all",
			"Just a plain paragraph with no links.",
			false,
		},
	}

	a := NewContentAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Analyze(tt.content).HasMismatchedLinks; got != tt.want {
				t.Errorf("HasMismatchedLinks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentAnalyzer_LanguageTag(t *testing.T) {
	a := NewContentAnalyzer()

	content := "We noticed a sign-in attempt from a device we do not recognize. " +
		"If this was not you, please review your recent activity and change " +
		"your password as soon as possible to keep your mailbox protected."

	findings := a.Analyze(content)

	if findings.Language != "" && findings.Language != "eng" {
		t.Errorf("Language = %q, want eng or empty", findings.Language)
	}
}
