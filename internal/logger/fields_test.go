package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "job_title", Value: "Backend Engineer"},
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "company", Value: "   "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "job_title" {
		t.Fatalf("unexpected field key: %s", fields[0].Key)
	}
}

func TestJobFields(t *testing.T) {
	t.Parallel()

	fields := JobFields("Backend Engineer", "Acme")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	fields = JobFields("", "Acme")
	if len(fields) != 1 {
		t.Fatalf("expected 1 field without title, got %d", len(fields))
	}
	if fields[0].Key != FieldCompany {
		t.Fatalf("unexpected field key: %s", fields[0].Key)
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	t.Parallel()

	if WithFields(nil) == nil {
		t.Fatalf("expected a usable logger for nil input")
	}

	base := zap.NewNop()
	if got := WithFields(base); got != base {
		t.Fatalf("expected logger returned unchanged when no fields supplied")
	}
}

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
