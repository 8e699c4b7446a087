package game

import "testing"

func TestAchievementsUnlockOnceInOrder(t *testing.T) {
	var a Achievements
	steps := []struct {
		catches, score int
		want           Achievement
		wantOK         bool
	}{
		{1, 1, FirstCatch, true},
		{2, 2, 0, false},
		{9, 10, TenPoints, true},
		{10, 11, 0, false},
		{40, 50, FiftyPoints, true},
		{80, 100, HundredPoints, true},
		{81, 102, 0, false},
	}
	for i, st := range steps {
		got, ok := a.check(st.catches, st.score)
		if ok != st.wantOK || (ok && got != st.want) {
			t.Fatalf("step %d: check = (%v, %v), want (%v, %v)", i, got, ok, st.want, st.wantOK)
		}
	}
	want := []Achievement{FirstCatch, TenPoints, FiftyPoints, HundredPoints}
	list := a.List()
	if len(list) != len(want) {
		t.Fatalf("unlocked = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("unlocked = %v, want %v", list, want)
		}
	}
}

func TestAchievementsFirstMatchWinsBanner(t *testing.T) {
	var a Achievements
	got, ok := a.check(60, 120)
	if !ok || got != FirstCatch {
		t.Fatalf("check = (%v, %v), want (FirstCatch, true)", got, ok)
	}
	if a.Banner != FirstCatch {
		t.Fatalf("banner = %v, want FirstCatch", a.Banner)
	}
	for _, k := range []Achievement{FirstCatch, TenPoints, FiftyPoints, HundredPoints} {
		if !a.Unlocked(k) {
			t.Errorf("%v not unlocked", k)
		}
	}
	if _, ok := a.check(61, 121); ok {
		t.Fatal("achievements unlocked twice")
	}
}

func TestAchievementBannerSlides(t *testing.T) {
	var a Achievements
	a.check(1, 1)
	if !a.Active || a.Timer != AchievementTicks || a.Y != AchievementHiddenY {
		t.Fatalf("banner = %+v, want active at hidden offset with full timer", a)
	}

	for i := 0; i < AchievementTicks; i++ {
		a.animate()
		if a.Y > AchievementRestingY {
			t.Fatalf("banner overshot resting offset: y = %v", a.Y)
		}
	}
	if a.Y != AchievementRestingY || a.Timer != 0 {
		t.Fatalf("banner y/timer = %v/%d, want %d/0", a.Y, a.Timer, AchievementRestingY)
	}

	ticks := 0
	for a.Active && ticks < 100 {
		a.animate()
		ticks++
	}
	if a.Active {
		t.Fatal("banner never cleared")
	}
	if a.Y != AchievementHiddenY {
		t.Fatalf("banner y = %v, want %d once cleared", a.Y, AchievementHiddenY)
	}
	if want := (AchievementRestingY-AchievementHiddenY)/AchievementSlideStep + 1; ticks != want {
		t.Fatalf("slide out took %d ticks, want %d", ticks, want)
	}
}

func TestAchievementsSurviveRestart(t *testing.T) {
	g := newPlayingGame(t, 21, nil)
	dropMatching(g, 0)
	g.Frame(t0)
	if !g.state.Achievements.Unlocked(FirstCatch) {
		t.Fatal("first catch not unlocked")
	}

	g.state.Lives = 1
	dropMismatching(g, 0)
	g.Frame(t0)
	g.PointerDown(0, 0, t0)
	g.PointerDown(0, 0, t0)
	g.Events()

	dropMatching(g, 0)
	g.Frame(t0)
	if n := countEvents(g.Events(), EventAchievement); n != 0 {
		t.Fatalf("achievement events after restart = %d, want 0", n)
	}
}
