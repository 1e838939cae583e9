package domain_test

import (
	"reflect"
	"testing"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

func TestSplitTags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		csv  string
		want []string
	}{
		{"plain", "flood,urgent", []string{"flood", "urgent"}},
		{"spaces trimmed", " flood , urgent ", []string{"flood", "urgent"}},
		{"empty pieces dropped", "flood,,urgent,", []string{"flood", "urgent"}},
		{"empty input", "", []string{}},
		{"only separators", ", ,", []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := domain.SplitTags(tc.csv)
			if got == nil {
				t.Fatalf("SplitTags must never return nil")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitTags(%q) = %v, want %v", tc.csv, got, tc.want)
			}
		})
	}
}
