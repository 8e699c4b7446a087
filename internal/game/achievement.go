package game

// Achievement identifies a one-time milestone.
type Achievement int

const (
	FirstCatch Achievement = iota
	TenPoints
	FiftyPoints
	HundredPoints
	achievementCount
)

func (a Achievement) String() string {
	switch a {
	case FirstCatch:
		return "First Catch!"
	case TenPoints:
		return "10 Points!"
	case FiftyPoints:
		return "50 Points!"
	case HundredPoints:
		return "100 Points!"
	default:
		return "Unknown"
	}
}

// milestones are evaluated in order after every catch.
var milestones = []struct {
	kind Achievement
	met  func(catches, score int) bool
}{
	{FirstCatch, func(catches, _ int) bool { return catches >= 1 }},
	{TenPoints, func(_, score int) bool { return score >= 10 }},
	{FiftyPoints, func(_, score int) bool { return score >= 50 }},
	{HundredPoints, func(_, score int) bool { return score >= 100 }},
}

// Achievements tracks unlocked milestones and the banner currently shown.
// The unlocked set only grows.
type Achievements struct {
	unlocked [achievementCount]bool
	order    []Achievement

	Banner Achievement
	Active bool    // Banner is on screen
	Timer  int     // Ticks left before the banner slides away
	Y      float64 // Banner top edge
}

// Unlocked reports whether kind has been unlocked.
func (a *Achievements) Unlocked(kind Achievement) bool {
	return kind >= 0 && kind < achievementCount && a.unlocked[kind]
}

// List returns the unlocked achievements in unlock order.
func (a *Achievements) List() []Achievement {
	return a.order
}

// check unlocks every satisfied milestone. Only the first one unlocked by
// this call is shown; it is returned with ok set.
func (a *Achievements) check(catches, score int) (shown Achievement, ok bool) {
	for _, m := range milestones {
		if a.unlocked[m.kind] || !m.met(catches, score) {
			continue
		}
		a.unlocked[m.kind] = true
		a.order = append(a.order, m.kind)
		if !ok {
			shown, ok = m.kind, true
			a.show(m.kind)
		}
	}
	return shown, ok
}

func (a *Achievements) show(kind Achievement) {
	a.Banner = kind
	a.Active = true
	a.Timer = AchievementTicks
	a.Y = AchievementHiddenY
}

// animate slides the banner in, holds it, then slides it out.
func (a *Achievements) animate() {
	if !a.Active {
		return
	}
	if a.Timer > 0 {
		a.Timer--
		if a.Y < AchievementRestingY {
			a.Y += AchievementSlideStep
		}
		return
	}
	if a.Y > AchievementHiddenY {
		a.Y -= AchievementSlideStep
		return
	}
	a.Active = false
}

// hide drops the banner without touching the unlocked set.
func (a *Achievements) hide() {
	a.Active = false
	a.Timer = 0
	a.Y = AchievementHiddenY
}
