package usecase

import "testing"

func TestEstimateDuration(t *testing.T) {
	uc := &implUseCase{}

	cases := []struct {
		title string
		want  int
	}{
		{"엄마한테 전화 돌리기", 10},
		{"메일 정리", 10},
		{"회의실 예약", 10},
		{"보고서 작성", 25},
		{"면접 준비", 25},
		{"책상 정돈", 25},
		{"산책", 5},
		{"", 5},
	}

	for _, tc := range cases {
		if got := uc.EstimateDuration(tc.title); got != tc.want {
			t.Errorf("EstimateDuration(%q) = %d, want %d", tc.title, got, tc.want)
		}
	}
}
