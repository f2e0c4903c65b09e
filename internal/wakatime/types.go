package wakatime

// Language is one entry of the ranked language breakdown. Order follows
// the provider's rank (descending by time).
type Language struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"totalSeconds"`
	Percent      float64 `json:"percent"`
	DisplayText  string  `json:"displayText"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Digital      string  `json:"digital,omitempty"`
}

// Breakdown is one entry of the editor or operating-system breakdown.
type Breakdown struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"totalSeconds"`
	Percent      float64 `json:"percent"`
	DisplayText  string  `json:"displayText"`
}

// BestDay is the highest-activity day in the reporting window.
type BestDay struct {
	Date         string  `json:"date"`
	DisplayText  string  `json:"displayText"`
	TotalSeconds float64 `json:"totalSeconds"`
}

// Range is the reporting window of a snapshot.
type Range struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	DisplayText string `json:"displayText"`
}

// Stats is one immutable snapshot of aggregated coding time. Every field
// is always populated: consumers never special-case "no stats".
type Stats struct {
	TotalSeconds        float64     `json:"totalSeconds"`
	TotalHours          int         `json:"totalHours"`
	TotalDisplayText    string      `json:"totalDisplayText"`
	DailyAverageSeconds float64     `json:"dailyAverageSeconds"`
	DailyAverageText    string      `json:"dailyAverageText"`
	Languages           []Language  `json:"languages"`
	Editors             []Breakdown `json:"editors"`
	OperatingSystems    []Breakdown `json:"operatingSystems"`
	BestDay             *BestDay    `json:"bestDay,omitempty"`
	Range               Range       `json:"range"`
}

// shareResponse mirrors the provider's share-endpoint document.
type shareResponse struct {
	Data struct {
		GrandTotal struct {
			TotalSeconds float64 `json:"total_seconds"`
			Text         string  `json:"text"`
		} `json:"grand_total"`
		DailyAverage struct {
			Seconds float64 `json:"seconds"`
			Text    string  `json:"text"`
		} `json:"daily_average"`
		Languages        []shareBreakdown `json:"languages"`
		Editors          []shareBreakdown `json:"editors"`
		OperatingSystems []shareBreakdown `json:"operating_systems"`
		BestDay          *struct {
			Date         string  `json:"date"`
			Text         string  `json:"text"`
			TotalSeconds float64 `json:"total_seconds"`
		} `json:"best_day"`
		Range struct {
			Start string `json:"start"`
			End   string `json:"end"`
			Text  string `json:"text"`
		} `json:"range"`
	} `json:"data"`
}

type shareBreakdown struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Text         string  `json:"text"`
	Digital      string  `json:"digital"`
}

// normalize converts the provider document into the canonical snapshot.
// The language list is truncated to maxLanguages preserving provider rank.
func normalize(doc *shareResponse) *Stats {
	d := &doc.Data

	languages := d.Languages
	if len(languages) > maxLanguages {
		languages = languages[:maxLanguages]
	}

	stats := &Stats{
		TotalSeconds:        d.GrandTotal.TotalSeconds,
		TotalHours:          int(d.GrandTotal.TotalSeconds) / 3600,
		TotalDisplayText:    d.GrandTotal.Text,
		DailyAverageSeconds: d.DailyAverage.Seconds,
		DailyAverageText:    d.DailyAverage.Text,
		Languages:           make([]Language, 0, len(languages)),
		Editors:             make([]Breakdown, 0, len(d.Editors)),
		OperatingSystems:    make([]Breakdown, 0, len(d.OperatingSystems)),
		Range: Range{
			Start:       d.Range.Start,
			End:         d.Range.End,
			DisplayText: d.Range.Text,
		},
	}
	if stats.Range.DisplayText == "" {
		stats.Range.DisplayText = "Last 7 Days"
	}

	for _, lang := range languages {
		stats.Languages = append(stats.Languages, Language{
			Name:         lang.Name,
			TotalSeconds: lang.TotalSeconds,
			Percent:      lang.Percent,
			DisplayText:  lang.Text,
			Hours:        int(lang.TotalSeconds) / 3600,
			Minutes:      (int(lang.TotalSeconds) % 3600) / 60,
			Digital:      lang.Digital,
		})
	}
	for _, e := range d.Editors {
		stats.Editors = append(stats.Editors, Breakdown{
			Name:         e.Name,
			TotalSeconds: e.TotalSeconds,
			Percent:      e.Percent,
			DisplayText:  e.Text,
		})
	}
	for _, o := range d.OperatingSystems {
		stats.OperatingSystems = append(stats.OperatingSystems, Breakdown{
			Name:         o.Name,
			TotalSeconds: o.TotalSeconds,
			Percent:      o.Percent,
			DisplayText:  o.Text,
		})
	}
	if d.BestDay != nil {
		stats.BestDay = &BestDay{
			Date:         d.BestDay.Date,
			DisplayText:  d.BestDay.Text,
			TotalSeconds: d.BestDay.TotalSeconds,
		}
	}

	return stats
}
