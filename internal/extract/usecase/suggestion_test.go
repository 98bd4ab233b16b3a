package usecase

import "testing"

func TestParseSuggestion(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		sug := parseSuggestion("```json\n{\"type\": \"Task\", \"title\": \"장보기\"}\n```")
		if string(sug.Type) != "task" {
			t.Errorf("Type = %q, want lowercased %q", sug.Type, "task")
		}
		if string(sug.Title) != "장보기" {
			t.Errorf("Title = %q", sug.Title)
		}
	})

	t.Run("prose around json", func(t *testing.T) {
		sug := parseSuggestion("알겠습니다. {\"type\": \"schedule\"} 입니다.")
		if string(sug.Type) != "schedule" {
			t.Errorf("Type = %q, want %q", sug.Type, "schedule")
		}
	})

	t.Run("garbage degrades to empty", func(t *testing.T) {
		sug := parseSuggestion("not json at all")
		if string(sug.Type) != "" || len(sug.Tasks) != 0 {
			t.Errorf("expected empty suggestion, got %+v", sug)
		}
	})

	t.Run("wrongly typed fields are ignored", func(t *testing.T) {
		sug := parseSuggestion(`{"type": 3, "title": null, "startTime": 12, "tasks": ["장보기"]}`)
		if string(sug.Type) != "" || string(sug.Title) != "" || string(sug.StartTime) != "" {
			t.Errorf("expected ignored fields, got %+v", sug)
		}
		if len(sug.Tasks) != 1 || sug.Tasks[0].Title != "장보기" {
			t.Errorf("Tasks = %+v", sug.Tasks)
		}
	})
}

func TestFlexMinutes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
		wantOK  bool
	}{
		{"number", `{"estimatedDurationMinutes": 25}`, 25, true},
		{"numeric string", `{"estimatedDurationMinutes": "10"}`, 10, true},
		{"float truncates", `{"estimatedDurationMinutes": 12.8}`, 12, true},
		{"non-numeric string", `{"estimatedDurationMinutes": "soon"}`, 0, false},
		{"absent", `{}`, 0, false},
		{"null", `{"estimatedDurationMinutes": null}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sug := parseSuggestion(tc.payload)
			got, ok := sug.EstimatedDurationMinutes.Minutes()
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("Minutes() = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestSuggestedTaskShapes(t *testing.T) {
	sug := parseSuggestion(`{"tasks": ["장보기", {"title": "청소하기", "dueDate": "2026-03-03", "estimatedDurationMinutes": "15"}, 42]}`)
	if len(sug.Tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(sug.Tasks))
	}
	if sug.Tasks[0].Title != "장보기" {
		t.Errorf("Tasks[0].Title = %q", sug.Tasks[0].Title)
	}
	if sug.Tasks[1].Title != "청소하기" || sug.Tasks[1].DueDate != "2026-03-03" {
		t.Errorf("Tasks[1] = %+v", sug.Tasks[1])
	}
	if n, ok := sug.Tasks[1].Minutes.Minutes(); !ok || n != 15 {
		t.Errorf("Tasks[1].Minutes = (%d, %v), want (15, true)", n, ok)
	}
	// The numeric entry degrades to an empty fragment rather than failing
	// the whole response.
	if sug.Tasks[2].Title != "" {
		t.Errorf("Tasks[2].Title = %q, want empty", sug.Tasks[2].Title)
	}
}
