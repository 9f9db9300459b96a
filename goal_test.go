package nestegg

import "testing"

func TestSnapshot_GoalProgress(t *testing.T) {
	s := &Snapshot{
		Date: Today(),
		Lines: []Line{
			line("house", RealEstate, "250000"),
			line("stocks", Stock, "40000"),
			line("cash", Cash, "10000"),
			line("loan", Debt, "100000"),
		},
	}
	// Net wealth: 300000 - 100000 = 200000.

	testCases := []struct {
		name         string
		goal         Goal
		wantCurrent  string
		wantProgress Percent
	}{
		{
			name:         "unlinked goal tracks net wealth",
			goal:         Goal{ID: "g1", Name: "FI", TargetAmount: d("400000")},
			wantCurrent:  "200000",
			wantProgress: 50,
		},
		{
			name:         "linked goal sums matching lines",
			goal:         Goal{ID: "g2", Name: "Emergency", TargetAmount: d("20000"), LinkedAssets: []string{"cash", "stocks"}},
			wantCurrent:  "50000",
			wantProgress: 100, // 250% capped
		},
		{
			name:         "missing linked ids are skipped",
			goal:         Goal{ID: "g3", Name: "Car", TargetAmount: d("20000"), LinkedAssets: []string{"cash", "deleted"}},
			wantCurrent:  "10000",
			wantProgress: 50,
		},
		{
			name:         "all linked ids missing yields zero progress",
			goal:         Goal{ID: "g4", Name: "Boat", TargetAmount: d("20000"), LinkedAssets: []string{"deleted"}},
			wantCurrent:  "0",
			wantProgress: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := s.GoalProgress([]Goal{tc.goal})
			if len(report) != 1 {
				t.Fatalf("GoalProgress returned %d entries, want 1", len(report))
			}
			got := report[0]
			if !got.CurrentAmount.Equal(d(tc.wantCurrent)) {
				t.Errorf("CurrentAmount = %s, want %s", got.CurrentAmount, tc.wantCurrent)
			}
			if !got.Progress.Equal(tc.wantProgress) {
				t.Errorf("Progress = %v, want %v", got.Progress, tc.wantProgress)
			}
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{name: "valid", goal: Goal{Name: "FI", TargetAmount: d("1000")}},
		{name: "missing name", goal: Goal{TargetAmount: d("1000")}, wantErr: true},
		{name: "zero target", goal: Goal{Name: "FI", TargetAmount: d("0")}, wantErr: true},
		{name: "negative target", goal: Goal{Name: "FI", TargetAmount: d("-5")}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.goal.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
