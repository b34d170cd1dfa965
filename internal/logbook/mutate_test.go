package logbook

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestAppendRowAddsSeparatorOnFirstRow(t *testing.T) {
	row := "2025-11-02 09:00; WORK; START"
	got := AppendRow(nil, row, at(9, 0))

	want := []string{Separator, row}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AppendRow() = %#v, want %#v", got, want)
	}
}

func TestAppendRowSameDaySkipsSeparator(t *testing.T) {
	lines := []string{Separator, "2025-11-02 09:00; WORK; START"}
	row := "2025-11-02 10:00; WORK; review"

	got := AppendRow(lines, row, at(10, 0))
	want := append(append([]string{}, lines...), row)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AppendRow() = %#v, want %#v", got, want)
	}
	if len(lines) != 2 {
		t.Fatalf("AppendRow mutated its input: %#v", lines)
	}
}

func TestAppendRowNewDayAddsSeparator(t *testing.T) {
	lines := []string{Separator, "2025-11-01 17:00; WORK; STOP", ""}
	row := "2025-11-02 09:00; WORK; START"

	got := AppendRow(lines, row, time.Date(2025, time.November, 2, 9, 0, 0, 0, time.Local))
	if got[len(got)-2] != Separator || got[len(got)-1] != row {
		t.Fatalf("AppendRow() tail = %#v, want separator then row", got[len(got)-2:])
	}
}

func TestRemoveLastKeepsSeparatorAboveRow(t *testing.T) {
	lines := []string{
		Separator,
		"2025-11-01 17:00; WORK; STOP",
		Separator,
		"2025-11-02 09:00; WORK; START",
	}

	remaining, removed, err := RemoveLast(lines)
	if err != nil {
		t.Fatalf("RemoveLast: %v", err)
	}
	if removed != lines[3] {
		t.Fatalf("removed = %q, want %q", removed, lines[3])
	}
	if !reflect.DeepEqual(remaining, lines[:3]) {
		t.Fatalf("remaining = %#v, want %#v", remaining, lines[:3])
	}
}

func TestRemoveLastConsumesTrailingSeparator(t *testing.T) {
	lines := []string{
		Separator,
		"2025-11-01 17:00; WORK; STOP",
		Separator,
		"",
	}

	remaining, removed, err := RemoveLast(lines)
	if err != nil {
		t.Fatalf("RemoveLast: %v", err)
	}
	if removed != lines[1] {
		t.Fatalf("removed = %q, want %q", removed, lines[1])
	}
	if !reflect.DeepEqual(remaining, []string{Separator}) {
		t.Fatalf("remaining = %#v, want only the first separator", remaining)
	}
}

func TestRemoveLastOnEmptyLog(t *testing.T) {
	for _, lines := range [][]string{nil, {""}, {Separator}} {
		if _, _, err := RemoveLast(lines); !errors.Is(err, ErrEmptyLog) {
			t.Fatalf("RemoveLast(%#v) error = %v, want ErrEmptyLog", lines, err)
		}
	}
}

func TestLastRowSkipsNonRows(t *testing.T) {
	lines := []string{"2025-11-02 09:00; WORK; START task", Separator, ""}

	row, ok := LastRow(lines)
	if !ok {
		t.Fatalf("LastRow reported not ok")
	}
	if row.Kind != KindActivityStart || row.Label != "task" {
		t.Fatalf("LastRow() = %+v", row)
	}

	if _, ok := LastRow([]string{Separator}); ok {
		t.Fatalf("LastRow(separator only) ok = true, want false")
	}
}
