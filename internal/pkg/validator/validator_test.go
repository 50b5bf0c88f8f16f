package validator

import (
	"testing"
	"time"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"123E4567-E89B-42D3-A456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-11")
	if !ok {
		t.Fatal("IsValidDate(\"2024-03-11\") = false, want true")
	}
	if date.Year() != 2024 || date.Month() != time.March || date.Day() != 11 {
		t.Errorf("IsValidDate parsed wrong date: %v", date)
	}

	for _, bad := range []string{"2024-3-11", "11-03-2024", "2024-13-01", "yesterday", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+07:00",
		"2024-01-15T10:30:00.123Z",
	}
	invalid := []string{"2024-01-15", "2024-01-15 10:30:00", "", "noon"}

	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"admin", "caregiver", "driver"}
	if !IsInSlice("caregiver", roles) {
		t.Error("IsInSlice(caregiver) = false, want true")
	}
	if IsInSlice("astronaut", roles) {
		t.Error("IsInSlice(astronaut) = true, want false")
	}
	if IsInSlice("admin", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "check_in", Message: "must be an RFC3339 timestamp"},
		{Field: "status", Message: "unknown status"},
	}

	m := errs.ToMap()
	if len(m) != 2 || m["status"] != "unknown status" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
