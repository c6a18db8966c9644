package models_test

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"

	"content-studio/models"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want models.Status
	}{
		{"draft", models.StatusDraft},
		{"client_approval", models.StatusClientApproval},
		{"idea", models.StatusIdea},
		{"planned", models.StatusPlanned},
		{"", models.StatusDraft},
		{"em_producao", models.StatusDraft},
		{"DRAFT", models.StatusDraft}, // matching is exact, not case-folded
	}
	for _, tc := range cases {
		if got := models.NormalizeStatus(tc.raw); got != tc.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestBoardColumnsAreKnownAndDraftFirst(t *testing.T) {
	if models.BoardColumns[0] != models.StatusDraft {
		t.Errorf("first column = %q, want draft as the fallback bucket", models.BoardColumns[0])
	}
	for _, col := range models.BoardColumns {
		if !col.Known() {
			t.Errorf("column %q missing display meta", col)
		}
		if col.Meta().Color == "" || col.Meta().Label == "" {
			t.Errorf("column %q has incomplete meta %+v", col, col.Meta())
		}
	}
}

func TestStatusMetaFallback(t *testing.T) {
	if got := models.Status("bogus").Meta(); got != models.StatusDraft.Meta() {
		t.Errorf("unknown status meta = %+v, want the draft meta", got)
	}
}

func TestSlideTexts(t *testing.T) {
	cases := []struct {
		name   string
		slides string
		want   []string
	}{
		{"plain strings", `["one", "two"]`, []string{"one", "two"}},
		{"text objects", `[{"text": "first"}, {"content": "second"}]`, []string{"first", "second"}},
		{"mixed", `["lead", {"text": "body"}]`, []string{"lead", "body"}},
		{"unusable entries skipped", `[42, {"other": true}, "ok"]`, []string{"ok"}},
		{"empty", ``, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := models.ContentItem{Slides: datatypes.JSON(tc.slides)}
			got := item.SlideTexts()
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SlideTexts() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidContentType(t *testing.T) {
	for _, ct := range models.ContentTypes {
		if !models.ValidContentType(ct) {
			t.Errorf("%q should be valid", ct)
		}
	}
	if models.ValidContentType("podcast") {
		t.Error("podcast is not a known format")
	}
}
