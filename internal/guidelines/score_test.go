package guidelines

import "testing"

func TestComplianceScore(t *testing.T) {
	tests := []struct {
		triggered int
		total     int
		want      int
	}{
		{0, 10, 100},
		{1, 10, 90},
		{2, 10, 80},
		{7, 10, 30},
		{10, 10, 0},
		{11, 10, 0}, // clamped
		{0, 0, 100}, // empty table
		{1, 3, 67},  // integer division of the per-rule share
	}

	for _, tt := range tests {
		if got := ComplianceScore(tt.triggered, tt.total); got != tt.want {
			t.Errorf("ComplianceScore(%d, %d) = %d, want %d", tt.triggered, tt.total, got, tt.want)
		}
	}
}

func TestComplianceScoreMonotonic(t *testing.T) {
	prev := 101
	for triggered := 0; triggered <= 12; triggered++ {
		score := ComplianceScore(triggered, 10)
		if score > prev {
			t.Errorf("score increased: ComplianceScore(%d, 10) = %d > %d", triggered, score, prev)
		}
		if score < 0 || score > 100 {
			t.Errorf("ComplianceScore(%d, 10) = %d, out of [0,100]", triggered, score)
		}
		prev = score
	}
}
