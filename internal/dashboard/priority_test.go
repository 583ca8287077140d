package dashboard

import (
	"reflect"
	"testing"
	"time"

	"tripboard/internal/domain/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestRankActionItemsExample(t *testing.T) {
	items := []models.ActionItem{
		{ID: 1, Priority: models.PriorityLow},
		{ID: 2, Priority: models.PriorityUrgent},
		{ID: 3, Priority: models.PriorityUrgent, DueDate: timePtr(day(2025, time.January, 5))},
		{ID: 4, Priority: models.PriorityUrgent, DueDate: timePtr(day(2025, time.January, 2))},
	}

	got := itemIDs(RankActionItems(items))
	if !reflect.DeepEqual(got, []int64{4, 3, 2, 1}) {
		t.Fatalf("order = %v, want [4 3 2 1]", got)
	}
	if ids := itemIDs(items); !reflect.DeepEqual(ids, []int64{1, 2, 3, 4}) {
		t.Fatalf("input mutated: %v", ids)
	}
}

func TestRankActionItemsStable(t *testing.T) {
	items := []models.ActionItem{
		{ID: 10, Priority: models.PriorityNormal},
		{ID: 11, Priority: models.PriorityHigh},
		{ID: 12, Priority: models.PriorityNormal},
		{ID: 13, Priority: models.PriorityNormal, DueDate: timePtr(day(2025, time.April, 1))},
		{ID: 14, Priority: models.PriorityNormal, DueDate: timePtr(time.Date(2025, time.April, 1, 17, 0, 0, 0, time.UTC))},
	}
	got := itemIDs(RankActionItems(items))
	if !reflect.DeepEqual(got, []int64{11, 13, 14, 10, 12}) {
		t.Fatalf("order = %v, want [11 13 14 10 12]", got)
	}
}

func TestRankActionItemsUnknownPriorityLast(t *testing.T) {
	items := []models.ActionItem{
		{ID: 1, Priority: "someday", DueDate: timePtr(day(2020, time.January, 1))},
		{ID: 2, Priority: ""},
		{ID: 3, Priority: " URGENT "},
		{ID: 4, Priority: models.PriorityLow},
	}
	got := itemIDs(RankActionItems(items))
	if !reflect.DeepEqual(got, []int64{3, 4, 1, 2}) {
		t.Fatalf("order = %v, want [3 4 1 2]", got)
	}
}

func TestRankActionItemsEmpty(t *testing.T) {
	out := RankActionItems(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestPriorityRank(t *testing.T) {
	cases := map[models.Priority]int{
		models.PriorityUrgent: 0,
		models.PriorityHigh:   1,
		models.PriorityNormal: 2,
		models.PriorityLow:    3,
		"High":                1,
		"critical":            4,
		"":                    4,
	}
	for p, want := range cases {
		if got := PriorityRank(p); got != want {
			t.Fatalf("PriorityRank(%q) = %d, want %d", p, got, want)
		}
	}
}
