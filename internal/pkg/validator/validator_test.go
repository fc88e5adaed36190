package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-06-01", "2023-12-31", "2024-02-29"}
	invalid := []string{"2024-6-1", "01-06-2024", "2024/06/01", "2023-02-29", "", "today"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"09:00", "23:59", "09:00:30", "00:00"}
	invalid := []string{"9:00", "9:00:00", "09:5", "24:00", "09:60", "09:00:60", "09.00", ""}
	for _, v := range valid {
		if _, ok := IsValidTime(v); !ok {
			t.Errorf("IsValidTime(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if _, ok := IsValidTime(v); ok {
			t.Errorf("IsValidTime(%q) = true, want false", v)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"DEFAULT", "WEEKLY", "SPECIFIC_PERIOD"}
	if !IsInSlice("WEEKLY", slice) {
		t.Error("IsInSlice(WEEKLY) = false, want true")
	}
	if IsInSlice("weekly", slice) {
		t.Error("IsInSlice(weekly) = true, want false")
	}
	if IsInSlice("", slice) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "staff_id", Message: "staff_id is required"},
		{Field: "shift_type", Message: "shift_type is required"},
	}

	if errs.Error() != "staff_id: staff_id is required; shift_type: shift_type is required" {
		t.Errorf("unexpected Error() output: %s", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 || m["staff_id"] == "" || m["shift_type"] == "" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}
