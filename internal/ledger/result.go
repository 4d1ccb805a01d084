package ledger

// Medal is the tier awarded for a session, by accuracy.
type Medal string

const (
	MedalGold   Medal = "gold"   // accuracy >= 90%
	MedalSilver Medal = "silver" // accuracy >= 70%
	MedalBronze Medal = "bronze" // accuracy >= 50%
	MedalRibbon Medal = "ribbon" // participation
)

// SessionResult summarizes one completed lesson or quick test.
//
// For quick tests Wrong is defined as 5 - score: questions not answered
// correctly, whether attempted or not. It is a display approximation,
// not a true wrong-answer count.
type SessionResult struct {
	Correct int
	Wrong   int
}

// Accuracy is Correct/(Correct+Wrong), 0 when nothing was answered.
func (r SessionResult) Accuracy() float64 {
	total := r.Correct + r.Wrong
	if total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(total)
}

// Medal maps accuracy onto the award tier.
func (r SessionResult) Medal() Medal {
	switch acc := r.Accuracy(); {
	case acc >= 0.90:
		return MedalGold
	case acc >= 0.70:
		return MedalSilver
	case acc >= 0.50:
		return MedalBronze
	default:
		return MedalRibbon
	}
}

// Icon returns the medal glyph for display.
func (m Medal) Icon() string {
	switch m {
	case MedalGold:
		return "🥇"
	case MedalSilver:
		return "🥈"
	case MedalBronze:
		return "🥉"
	default:
		return "🎖️"
	}
}
