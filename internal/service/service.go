package service

import (
	"context"

	"github.com/phishsense/threatscan/internal/analyzer"
	"github.com/phishsense/threatscan/internal/logging"
)

// Service provides the business logic layer for threat analysis
// It sits between the HTTP transport layer and the analyzer engine
type Service struct {
	aggregator *analyzer.Aggregator
	logger     *logging.Logger
}

// New creates a new Service instance
func New(agg *analyzer.Aggregator, logger *logging.Logger) *Service {
	return &Service{
		aggregator: agg,
		logger:     logger,
	}
}

// CheckURL evaluates a single URL with optional content.
// This is the main entry point for the single-URL use case; it always
// produces a report and never returns an error.
func (s *Service) CheckURL(ctx context.Context, url, content string) *analyzer.ThreatReport {
	s.logger.Info("Analyzing URL", "url", url, "has_content", content != "")

	report := s.aggregator.Check(url, content)

	s.logger.Info("Analysis completed",
		"url", url,
		"threat_level", report.ThreatLevel,
		"confidence", report.Confidence,
		"threats", len(report.Threats),
	)

	return report
}

// BatchCheck evaluates each URL independently and concurrently,
// preserving input order in the result slice
func (s *Service) BatchCheck(ctx context.Context, urls []string) []*analyzer.ThreatReport {
	s.logger.Info("Batch analysis started", "count", len(urls))

	reports := s.aggregator.BatchCheck(urls)

	unsafe := 0
	for _, report := range reports {
		if !report.IsSafe {
			unsafe++
		}
	}
	s.logger.Info("Batch analysis completed", "count", len(reports), "unsafe", unsafe)

	return reports
}
