package listview

import (
	"errors"
	"testing"

	apperrors "sphereoftech/internal/errors"
)

func sampleRecords() []record {
	return []record{
		{ID: 1, Title: "AI Revolution", Tags: []string{"AI", "Finance"}, Category: "Technology"},
		{ID: 2, Title: "Tesla Surges", Tags: []string{"Tesla", "TSLA"}, Category: "Stocks"},
		{ID: 3, Title: "NVIDIA Chips", Tags: []string{"AI Chips", "Hardware"}, Category: "Hardware"},
	}
}

func TestNewRejectsEmptySource(t *testing.T) {
	_, err := New[record](nil, recordFields)
	if !errors.Is(err, apperrors.ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestNewSelectsFirstRecord(t *testing.T) {
	v := MustNew(sampleRecords(), recordFields)
	if v.Selected().ID != 1 {
		t.Fatalf("expected first record selected, got %d", v.Selected().ID)
	}
	if v.Query().Category != All {
		t.Errorf("expected All selector, got %q", v.Query().Category)
	}
	if len(v.Visible()) != 3 {
		t.Errorf("expected all records visible, got %d", len(v.Visible()))
	}
}

func TestViewCopiesSource(t *testing.T) {
	src := sampleRecords()
	v := MustNew(src, recordFields)
	src[0].Title = "changed"
	if v.Selected().Title != "AI Revolution" {
		t.Fatalf("view shares storage with caller slice")
	}
}

func TestSelectionSurvivesFilter(t *testing.T) {
	v := MustNew(sampleRecords(), recordFields)
	if err := v.Select("1"); err != nil {
		t.Fatal(err)
	}

	v.SetCategory("Stocks")
	if got := v.Visible(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected visible records %+v", got)
	}
	if v.Selected().ID != 1 {
		t.Fatalf("filter changed selection to %d", v.Selected().ID)
	}
	if v.SelectionVisible() {
		t.Error("selection should be reported as filtered out")
	}
	if v.SelectedRow() != -1 {
		t.Errorf("expected row -1, got %d", v.SelectedRow())
	}
}

func TestSelectUnknownKey(t *testing.T) {
	v := MustNew(sampleRecords(), recordFields)
	err := v.Select("99")
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if v.Selected().ID != 1 {
		t.Error("failed select must keep the previous selection")
	}
}

func TestSelectVisible(t *testing.T) {
	v := MustNew(sampleRecords(), recordFields)
	v.SetSearch("ai")

	if err := v.SelectVisible(1); err != nil {
		t.Fatal(err)
	}
	if v.Selected().ID != 3 {
		t.Fatalf("expected NVIDIA selected, got %d", v.Selected().ID)
	}
	if err := v.SelectVisible(5); !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for out of range row, got %v", err)
	}
}

func TestMoveSelectionClampsAndRecovers(t *testing.T) {
	v := MustNew(sampleRecords(), recordFields)

	v.MoveSelection(-1)
	if v.Selected().ID != 1 {
		t.Errorf("expected clamp at first row, got %d", v.Selected().ID)
	}
	v.MoveSelection(5)
	if v.Selected().ID != 3 {
		t.Errorf("expected clamp at last row, got %d", v.Selected().ID)
	}

	v.SetCategory("Stocks")
	v.MoveSelection(1)
	if v.Selected().ID != 2 {
		t.Errorf("expected jump to first visible row, got %d", v.Selected().ID)
	}

	v.SetSearch("nothing matches")
	v.MoveSelection(1)
	if v.Selected().ID != 2 {
		t.Errorf("empty list must not change selection, got %d", v.Selected().ID)
	}
}

func TestCategoriesAndCycle(t *testing.T) {
	v := MustNew(sampleRecords(), recordFields)
	want := []string{All, "Technology", "Stocks", "Hardware"}
	got := v.Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	for _, expected := range []string{"Technology", "Stocks", "Hardware", All} {
		if c := v.CycleCategory(); c != expected {
			t.Fatalf("expected %q, got %q", expected, c)
		}
	}
}

func TestNoCategoryField(t *testing.T) {
	fields := Fields[record]{Text: recordFields.Text}
	v := MustNew(sampleRecords(), fields)
	v.SetCategory("Stocks")
	if len(v.Visible()) != 3 {
		t.Errorf("nil Category accessor must not filter")
	}
	if cats := v.Categories(); len(cats) != 1 || cats[0] != All {
		t.Errorf("expected only All, got %v", cats)
	}
}

func TestNextCategoryUnknownRestarts(t *testing.T) {
	if got := NextCategory([]string{All, "High"}, "bogus"); got != All {
		t.Errorf("expected restart at All, got %q", got)
	}
	if got := NextCategory(nil, "High"); got != All {
		t.Errorf("expected All for no options, got %q", got)
	}
}

func TestQueryIsZero(t *testing.T) {
	if !(Query{}).IsZero() || !(Query{Search: "  ", Category: All}).IsZero() {
		t.Error("blank queries should be zero")
	}
	if (Query{Search: "ai"}).IsZero() || (Query{Category: "Stocks"}).IsZero() {
		t.Error("non-blank queries should not be zero")
	}
}
