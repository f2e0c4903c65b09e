package wakatime

// DefaultStats is the deterministic dataset served when the feed is
// unconfigured or unreachable and no cached snapshot exists. It carries
// the full canonical shape so presentation code never sees a partial
// snapshot.
func DefaultStats() *Stats {
	return &Stats{
		TotalSeconds:        500000,
		TotalHours:          138,
		TotalDisplayText:    "138 hrs",
		DailyAverageSeconds: 16200,
		DailyAverageText:    "4 hrs 30 mins",
		Languages: []Language{
			{Name: "Python", TotalSeconds: 150000, Percent: 30, DisplayText: "41 hrs", Hours: 41, Digital: "41:00"},
			{Name: "TypeScript", TotalSeconds: 120000, Percent: 24, DisplayText: "33 hrs", Hours: 33, Digital: "33:00"},
			{Name: "Zig", TotalSeconds: 100000, Percent: 20, DisplayText: "27 hrs", Hours: 27, Digital: "27:00"},
			{Name: "JavaScript", TotalSeconds: 80000, Percent: 16, DisplayText: "22 hrs", Hours: 22, Digital: "22:00"},
			{Name: "Rust", TotalSeconds: 50000, Percent: 10, DisplayText: "13 hrs", Hours: 13, Digital: "13:00"},
		},
		Editors: []Breakdown{
			{Name: "VS Code", Percent: 85, DisplayText: "117 hrs"},
			{Name: "Neovim", Percent: 15, DisplayText: "21 hrs"},
		},
		OperatingSystems: []Breakdown{
			{Name: "Linux", Percent: 70, DisplayText: "96 hrs"},
			{Name: "Windows", Percent: 30, DisplayText: "42 hrs"},
		},
		BestDay: &BestDay{Date: "2024-12-25", DisplayText: "8 hrs 30 mins", TotalSeconds: 30600},
		Range:   Range{Start: "2024-12-21", End: "2024-12-28", DisplayText: "Last 7 Days"},
	}
}
