package models

import "testing"

func TestClassifyIncidentCount(t *testing.T) {
	cases := []struct {
		count     int
		wantLevel string
		wantColor string
		wantLabel string
	}{
		{1, RiskLevelLow, ColorLow, RiskLabelLow},
		{2, RiskLevelMedium, ColorMedium, RiskLabelMedium},
		{3, RiskLevelMedium, ColorMedium, RiskLabelMedium},
		{4, RiskLevelMedium, ColorMedium, RiskLabelMedium},
		{5, RiskLevelHigh, ColorHigh, RiskLabelHigh},
		{6, RiskLevelHigh, ColorHigh, RiskLabelHigh},
		{100, RiskLevelHigh, ColorHigh, RiskLabelHigh},
		{0, RiskLevelLow, ColorLow, RiskLabelLow},
	}

	for _, tc := range cases {
		level, color, label := ClassifyIncidentCount(tc.count)
		if level != tc.wantLevel {
			t.Errorf("ClassifyIncidentCount(%d) level = %s, want %s", tc.count, level, tc.wantLevel)
		}
		if color != tc.wantColor {
			t.Errorf("ClassifyIncidentCount(%d) color = %s, want %s", tc.count, color, tc.wantColor)
		}
		if label != tc.wantLabel {
			t.Errorf("ClassifyIncidentCount(%d) label = %s, want %s", tc.count, label, tc.wantLabel)
		}
	}
}

func TestHotspotClassify(t *testing.T) {
	h := Hotspot{IncidentCount: 6}
	h.Classify()

	if h.RiskLevel != RiskLevelHigh || h.Color != ColorHigh || h.RiskLabel != RiskLabelHigh {
		t.Errorf("Classify() = %s/%s/%s, want high risk fields", h.RiskLevel, h.Color, h.RiskLabel)
	}
	if !h.IsHighRisk() {
		t.Error("IsHighRisk() = false for 6 incidents")
	}

	h = Hotspot{IncidentCount: 4}
	h.Classify()
	if h.IsHighRisk() {
		t.Error("IsHighRisk() = true for 4 incidents")
	}
}
