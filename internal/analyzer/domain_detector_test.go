package analyzer

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"paypal", "paypal", 0},
		{"paypa1", "paypal", 1},
		{"kitten", "sitting", 3},
		{"google", "goggle", 1},
	}

	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDomainDetector_ExactMatchNotSpoofed(t *testing.T) {
	d := NewDomainDetector()

	for _, domain := range []string{"google.com", "paypal.com", "github.com"} {
		findings := d.CheckSpoofing(domain)
		if findings.IsSpoofed {
			t.Errorf("Expected exact reference match %q not to be flagged as spoofed", domain)
		}
	}
}

func TestDomainDetector_OneEditSpoof(t *testing.T) {
	d := NewDomainDetector()

	findings := d.CheckSpoofing("paypa1.com")

	if !findings.IsSpoofed {
		t.Fatal("Expected paypa1.com to be flagged as spoofed")
	}
	if findings.SimilarTo != "paypal.com" {
		t.Errorf("SimilarTo = %q, want paypal.com", findings.SimilarTo)
	}
	if findings.EditDistance != 1 {
		t.Errorf("EditDistance = %d, want 1", findings.EditDistance)
	}
}

func TestDomainDetector_Normalization(t *testing.T) {
	d := NewDomainDetector()

	// Leading www. is stripped and the comparison is case-insensitive
	if !d.CheckSpoofing("www.PayPa1.com").IsSpoofed {
		t.Error("Expected www.PayPa1.com to be flagged after normalization")
	}
	if d.CheckSpoofing("www.paypal.com").IsSpoofed {
		t.Error("Expected www.paypal.com to normalize to an exact match")
	}
}

func TestDomainDetector_UnrelatedDomainNotSpoofed(t *testing.T) {
	d := NewDomainDetector()

	findings := d.CheckSpoofing("secure-paypal-verify.com")

	// Too far from every reference domain to land in the spoof window
	if findings.IsSpoofed {
		t.Errorf("Expected secure-paypal-verify.com not to be spoofed, similar to %q", findings.SimilarTo)
	}
}

func TestDomainDetector_Homograph(t *testing.T) {
	d := NewDomainDetector()

	tests := []struct {
		domain string
		want   bool
	}{
		{"pаypal.com", true}, // Cyrillic а
		{"googlе.com", true}, // Cyrillic е
		{"paypal.com", false},
		{"google.com", false}, // plain ASCII l never triggers
		{"paypa1.com", false}, // digit substitution is the spoof check's job
	}

	for _, tt := range tests {
		if got := d.DetectHomograph(tt.domain); got != tt.want {
			t.Errorf("DetectHomograph(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}
