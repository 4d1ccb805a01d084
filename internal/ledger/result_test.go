package ledger

import "testing"

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, wrong int
		want           float64
	}{
		{0, 0, 0},
		{4, 1, 0.8},
		{5, 0, 1},
		{0, 5, 0},
	}
	for _, tt := range tests {
		r := SessionResult{Correct: tt.correct, Wrong: tt.wrong}
		if got := r.Accuracy(); got != tt.want {
			t.Errorf("Accuracy(%d,%d) = %v, want %v", tt.correct, tt.wrong, got, tt.want)
		}
	}
}

func TestMedalTiers(t *testing.T) {
	tests := []struct {
		correct, wrong int
		want           Medal
	}{
		{9, 1, MedalGold},
		{10, 0, MedalGold},
		{7, 3, MedalSilver},
		{8, 2, MedalSilver},
		{5, 5, MedalBronze},
		{6, 4, MedalBronze},
		{4, 6, MedalRibbon},
		{0, 0, MedalRibbon},
	}
	for _, tt := range tests {
		r := SessionResult{Correct: tt.correct, Wrong: tt.wrong}
		if got := r.Medal(); got != tt.want {
			t.Errorf("Medal(%d/%d) = %s, want %s", tt.correct, tt.correct+tt.wrong, got, tt.want)
		}
	}
}
