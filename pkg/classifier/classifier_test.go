package classifier

import (
	"reflect"
	"testing"
)

func TestClassify_BasicTags(t *testing.T) {
	c := New(nil)

	tags := c.Classify("2001: A Space Odyssey", "Presented in 70mm. New 4K restoration.")
	want := []string{"70mm", "Restoration"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestClassify_SpecialEventDroppedWhenSpecific(t *testing.T) {
	c := New(nil)

	tags := c.Classify("Opening Gala", "Special screening followed by a Q&A with the cast")
	for _, tag := range tags {
		if tag == "Special Event" {
			t.Errorf("generic Special Event should be dropped when %v are present", tags)
		}
	}
	if !contains(tags, "Q&A") {
		t.Errorf("tags = %v, want Q&A detected", tags)
	}
}

func TestClassify_SpecialEventKeptWhenAlone(t *testing.T) {
	c := New(nil)

	tags := c.Classify("A Film", "A special presentation of the film.")
	if !contains(tags, "Special Event") {
		t.Errorf("tags = %v, want Special Event kept when nothing more specific matched", tags)
	}
}

func TestClassify_NothingSpecial(t *testing.T) {
	c := New(nil)

	if tags := c.Classify("Regular Movie", "People talk and things happen."); len(tags) != 0 {
		t.Errorf("tags = %v, want none", tags)
	}
	if c.IsSpecial("Regular Movie", "People talk and things happen.") {
		t.Error("IsSpecial should be false for a plain listing")
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := New(nil)

	if tags := c.Classify("SHOWN IN IMAX", ""); !contains(tags, "IMAX") {
		t.Errorf("tags = %v, want IMAX", tags)
	}
}

func TestFormatTags(t *testing.T) {
	if got := FormatTags([]string{"Q&A", "35mm"}); got != "Q&A | 35mm" {
		t.Errorf("FormatTags = %q", got)
	}
	if got := FormatTags(nil); got != "" {
		t.Errorf("FormatTags(nil) = %q, want empty", got)
	}
}

func TestNote(t *testing.T) {
	c := New(nil)

	note := c.Note("Film", "world premiere with director in person")
	if note == "" {
		t.Fatal("Note should be non-empty for a premiere with director")
	}
}

func TestCustomCategories(t *testing.T) {
	c := New([]Category{{Tag: "Sing-Along", Keywords: []string{"sing-along", "singalong"}}})

	tags := c.Classify("Frozen Sing-Along", "")
	if !reflect.DeepEqual(tags, []string{"Sing-Along"}) {
		t.Errorf("tags = %v, want only the custom category", tags)
	}
	// Default categories are not consulted.
	if tags := c.Classify("IMAX screening", ""); len(tags) != 0 {
		t.Errorf("tags = %v, want none with custom table", tags)
	}
}

func contains(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
