package service

import (
	"testing"

	"credit-score/internal/domain"
)

func TestClassifyRisk_Thresholds(t *testing.T) {
	cases := []struct {
		score int
		level domain.RiskLevel
	}{
		{score: 1000, level: domain.RiskLow},
		{score: 801, level: domain.RiskLow},
		{score: 800, level: domain.RiskLow},
		{score: 799, level: domain.RiskMedium},
		{score: 600, level: domain.RiskMedium},
		{score: 599, level: domain.RiskHigh},
		{score: 400, level: domain.RiskHigh},
		{score: 399, level: domain.RiskVeryHigh},
		{score: 100, level: domain.RiskVeryHigh},
		{score: 0, level: domain.RiskVeryHigh},
	}

	for _, tc := range cases {
		level, message := ClassifyRisk(tc.score)
		if level != tc.level {
			t.Fatalf("score %d: expected %s, got %s", tc.score, tc.level, level)
		}
		if message == "" {
			t.Fatalf("score %d: expected a message", tc.score)
		}
	}
}

func TestClassifyRisk_MessagesDistinctPerLevel(t *testing.T) {
	seen := map[string]domain.RiskLevel{}
	for _, score := range []int{900, 700, 500, 200} {
		level, message := ClassifyRisk(score)
		if prior, ok := seen[message]; ok && prior != level {
			t.Fatalf("message %q reused across levels %s and %s", message, prior, level)
		}
		seen[message] = level
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct messages, got %d", len(seen))
	}
}

func TestClassifyRisk_NonIncreasingRisk(t *testing.T) {
	order := map[domain.RiskLevel]int{
		domain.RiskVeryHigh: 3,
		domain.RiskHigh:     2,
		domain.RiskMedium:   1,
		domain.RiskLow:      0,
	}
	previous := order[domain.RiskVeryHigh]
	for score := 0; score <= 1000; score++ {
		level, _ := ClassifyRisk(score)
		if order[level] > previous {
			t.Fatalf("risk increased at score %d: %s", score, level)
		}
		previous = order[level]
	}
}
