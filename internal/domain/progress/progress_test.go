package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

var testToday = time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC) // a Wednesday

func day(offset int) time.Time {
	return testToday.AddDate(0, 0, offset)
}

func newTestHabit(freq entity.Frequency) *entity.Habit {
	return entity.NewHabit(uuid.New(), uuid.New(), "test habit", entity.HabitTypeBuild, freq)
}

func TestIsDueOn(t *testing.T) {
	t.Run("daily habit is always due", func(t *testing.T) {
		h := newTestHabit(entity.FrequencyDaily)
		for offset := 0; offset < 7; offset++ {
			if !IsDueOn(h, day(offset)) {
				t.Errorf("daily habit not due on %s", day(offset).Weekday())
			}
		}
	})

	t.Run("weekly habit due only on its weekday", func(t *testing.T) {
		h := newTestHabit(entity.FrequencyWeekly)
		wd := time.Wednesday
		h.Weekday = &wd

		if !IsDueOn(h, testToday) {
			t.Error("expected weekly habit due on Wednesday")
		}
		if IsDueOn(h, day(1)) {
			t.Error("expected weekly habit not due on Thursday")
		}
	})

	t.Run("weekly habit falls back to weekday name in preferred time", func(t *testing.T) {
		h := newTestHabit(entity.FrequencyWeekly)
		h.PreferredTime = "Wednesday"

		if !IsDueOn(h, testToday) {
			t.Error("expected weekday name in preferred time to match")
		}
		if IsDueOn(h, day(1)) {
			t.Error("expected no match on a different weekday")
		}
	})

	t.Run("weekly habit with clock preferred time is never due", func(t *testing.T) {
		h := newTestHabit(entity.FrequencyWeekly)
		h.PreferredTime = "6:00 AM"

		for offset := 0; offset < 7; offset++ {
			if IsDueOn(h, day(offset)) {
				t.Errorf("weekly habit without weekday due on %s", day(offset).Weekday())
			}
		}
	})

	t.Run("custom habit is never due", func(t *testing.T) {
		h := newTestHabit(entity.FrequencyCustom)
		for offset := 0; offset < 7; offset++ {
			if IsDueOn(h, day(offset)) {
				t.Errorf("custom habit due on %s", day(offset).Weekday())
			}
		}
	})
}

func TestDueHabits(t *testing.T) {
	daily := newTestHabit(entity.FrequencyDaily)
	custom := newTestHabit(entity.FrequencyCustom)
	inactive := newTestHabit(entity.FrequencyDaily)
	inactive.IsActive = false

	due := DueHabits([]*entity.Habit{daily, custom, inactive}, testToday)
	if len(due) != 1 || due[0] != daily {
		t.Errorf("expected only the active daily habit, got %d habits", len(due))
	}
}

func TestParseWeekday(t *testing.T) {
	if wd, ok := ParseWeekday("monday"); !ok || wd != time.Monday {
		t.Errorf("ParseWeekday(monday) = %v, %v", wd, ok)
	}
	if wd, ok := ParseWeekday(" Friday "); !ok || wd != time.Friday {
		t.Errorf("ParseWeekday(Friday) = %v, %v", wd, ok)
	}
	if _, ok := ParseWeekday("6:00 AM"); ok {
		t.Error("expected clock time not to parse as weekday")
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		want        int
	}{
		{"no completions", nil, 0},
		{"today only", []time.Time{day(0)}, 1},
		{"today and yesterday", []time.Time{day(0), day(-1)}, 2},
		{"open streak without today", []time.Time{day(-1), day(-2)}, 2},
		{"gap breaks continuity", []time.Time{day(0), day(-2)}, 1},
		{"only old completions", []time.Time{day(-5), day(-6)}, 0},
		{"long run", []time.Time{day(0), day(-1), day(-2), day(-3), day(-4)}, 5},
		{"unordered input", []time.Time{day(-2), day(0), day(-1)}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Streak(tc.completions, testToday); got != tc.want {
				t.Errorf("Streak() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStreakNormalizesTimestamps(t *testing.T) {
	// Completions recorded mid-day still count as that calendar day.
	completions := []time.Time{
		day(0).Add(14 * time.Hour),
		day(-1).Add(23 * time.Hour),
	}
	if got := Streak(completions, testToday.Add(9*time.Hour)); got != 2 {
		t.Errorf("Streak() = %d, want 2", got)
	}
}

func TestGoalStreak(t *testing.T) {
	tests := []struct {
		name    string
		streaks []int
		want    int
	}{
		{"no habits", nil, 0},
		{"single habit", []int{7}, 7},
		{"mean rounds up", []int{3, 4}, 4},      // 3.5 -> 4
		{"mean rounds down", []int{3, 4, 5}, 4}, // 4.0
		{"zero streaks", []int{0, 0, 0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GoalStreak(tc.streaks); got != tc.want {
				t.Errorf("GoalStreak(%v) = %d, want %d", tc.streaks, got, tc.want)
			}
		})
	}
}

func TestCompletionRate(t *testing.T) {
	t.Run("no completions", func(t *testing.T) {
		if got := CompletionRate(nil, testToday); got != 0 {
			t.Errorf("CompletionRate() = %d, want 0", got)
		}
	})

	t.Run("full window", func(t *testing.T) {
		var completions []time.Time
		for i := 0; i < 30; i++ {
			completions = append(completions, day(-i))
		}
		if got := CompletionRate(completions, testToday); got != 100 {
			t.Errorf("CompletionRate() = %d, want 100", got)
		}
	})

	t.Run("half window", func(t *testing.T) {
		var completions []time.Time
		for i := 0; i < 15; i++ {
			completions = append(completions, day(-i))
		}
		if got := CompletionRate(completions, testToday); got != 50 {
			t.Errorf("CompletionRate() = %d, want 50", got)
		}
	})

	t.Run("completions outside window ignored", func(t *testing.T) {
		completions := []time.Time{day(-30), day(-40), day(0)}
		if got := CompletionRate(completions, testToday); got != 3 {
			t.Errorf("CompletionRate() = %d, want 3", got)
		}
	})

	t.Run("rounding", func(t *testing.T) {
		// 7/30 = 23.33 -> 23
		var completions []time.Time
		for i := 0; i < 7; i++ {
			completions = append(completions, day(-i))
		}
		if got := CompletionRate(completions, testToday); got != 23 {
			t.Errorf("CompletionRate() = %d, want 23", got)
		}
	})
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name           string
		completed, due int
		want           int
	}{
		{"no due habits", 0, 0, 0},
		{"none completed", 0, 3, 0},
		{"all completed", 3, 3, 100},
		{"two of three", 2, 3, 67},
		{"one of three", 1, 3, 33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GoalProgress(tc.completed, tc.due); got != tc.want {
				t.Errorf("GoalProgress(%d, %d) = %d, want %d", tc.completed, tc.due, got, tc.want)
			}
		})
	}
}

func TestBuildGoalStatus(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewGoal(userID, "Get fit", "", entity.GoalCategoryHealth, "#10b981", time.Time{}, "")

	h1 := entity.NewHabit(userID, goal.ID, "Run", entity.HabitTypeBuild, entity.FrequencyDaily)
	h2 := entity.NewHabit(userID, goal.ID, "Stretch", entity.HabitTypeBuild, entity.FrequencyDaily)
	h3 := entity.NewHabit(userID, goal.ID, "Yoga class", entity.HabitTypeBuild, entity.FrequencyWeekly)
	monday := time.Monday
	h3.Weekday = &monday // not due on the Wednesday under test

	completions := map[uuid.UUID][]time.Time{
		h1.ID: {day(0), day(-1), day(-2)},
		h2.ID: {day(-1)},
	}

	status := BuildGoalStatus(goal, []*entity.Habit{h1, h2, h3}, completions, testToday)

	if status.TotalHabitsToday != 2 {
		t.Errorf("TotalHabitsToday = %d, want 2", status.TotalHabitsToday)
	}
	if status.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d, want 1", status.CompletedToday)
	}
	if status.ProgressPercentage != 50 {
		t.Errorf("ProgressPercentage = %d, want 50", status.ProgressPercentage)
	}
	// Streaks: h1=3, h2=1 (open streak from yesterday), h3=0. Mean 4/3 -> 1.
	if status.Streak != 1 {
		t.Errorf("Streak = %d, want 1", status.Streak)
	}
	if len(status.Habits) != 3 {
		t.Fatalf("len(Habits) = %d, want 3", len(status.Habits))
	}
	if status.Habits[0].Streak != 3 || !status.Habits[0].CompletedToday {
		t.Errorf("habit 1 status = %+v", status.Habits[0])
	}
	if status.Habits[2].DueToday {
		t.Error("weekly habit should not be due on Wednesday")
	}
}

func TestBuildGoalStatusSkipsInactiveHabits(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewGoal(userID, "Read more", "", entity.GoalCategoryEducation, "#6366f1", time.Time{}, "")

	active := entity.NewHabit(userID, goal.ID, "Read", entity.HabitTypeBuild, entity.FrequencyDaily)
	removed := entity.NewHabit(userID, goal.ID, "Old habit", entity.HabitTypeBuild, entity.FrequencyDaily)
	removed.IsActive = false

	completions := map[uuid.UUID][]time.Time{
		removed.ID: {day(0), day(-1)},
	}

	status := BuildGoalStatus(goal, []*entity.Habit{active, removed}, completions, testToday)

	if len(status.Habits) != 1 {
		t.Fatalf("len(Habits) = %d, want 1", len(status.Habits))
	}
	if status.TotalHabitsToday != 1 || status.CompletedToday != 0 {
		t.Errorf("due/completed = %d/%d, want 1/0", status.TotalHabitsToday, status.CompletedToday)
	}
}

func TestBuildSummary(t *testing.T) {
	t.Run("no goals", func(t *testing.T) {
		summary := BuildSummary(nil, nil, nil, testToday)
		if summary.TotalGoals != 0 || summary.CompletedToday != 0 || summary.LongestStreak != 0 || summary.OverallProgress != 0 {
			t.Errorf("expected all-zero summary, got %+v", summary)
		}
	})

	t.Run("aggregates across goals", func(t *testing.T) {
		userID := uuid.New()
		g1 := entity.NewGoal(userID, "Get fit", "", entity.GoalCategoryHealth, "#10b981", time.Time{}, "")
		g2 := entity.NewGoal(userID, "Learn Spanish", "", entity.GoalCategoryEducation, "#6366f1", time.Time{}, "")
		inactive := entity.NewGoal(userID, "Abandoned", "", entity.GoalCategoryPersonal, "#64748b", time.Time{}, "")
		inactive.IsActive = false

		h1 := entity.NewHabit(userID, g1.ID, "Run", entity.HabitTypeBuild, entity.FrequencyDaily)
		h2 := entity.NewHabit(userID, g2.ID, "Practice vocab", entity.HabitTypeBuild, entity.FrequencyDaily)
		h3 := entity.NewHabit(userID, inactive.ID, "Ghost habit", entity.HabitTypeBuild, entity.FrequencyDaily)

		completions := map[uuid.UUID][]time.Time{
			h1.ID: {day(0), day(-1), day(-2), day(-3)},
			h3.ID: {day(0)},
		}

		summary := BuildSummary(
			[]*entity.Goal{g1, g2, inactive},
			[]*entity.Habit{h1, h2, h3},
			completions,
			testToday,
		)

		if summary.TotalGoals != 2 {
			t.Errorf("TotalGoals = %d, want 2", summary.TotalGoals)
		}
		if summary.CompletedToday != 1 {
			t.Errorf("CompletedToday = %d, want 1", summary.CompletedToday)
		}
		if summary.LongestStreak != 4 {
			t.Errorf("LongestStreak = %d, want 4", summary.LongestStreak)
		}
		// g1 at 100%, g2 at 0% -> overall 50.
		if summary.OverallProgress != 50 {
			t.Errorf("OverallProgress = %d, want 50", summary.OverallProgress)
		}
		if len(summary.Goals) != 2 {
			t.Errorf("len(Goals) = %d, want 2", len(summary.Goals))
		}
	})
}
