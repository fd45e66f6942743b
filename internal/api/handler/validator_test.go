package handler

import "testing"

func TestValidatorMessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&contactRequest{Name: "Ana", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	want := "email must be a valid email; message is required"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}

	if err := v.Validate(&createInsightRequest{Title: "t", Category: "c", ImageURL: "::"}); err == nil {
		t.Fatal("expected url validation error")
	}
	if err := v.Validate(&createInsightRequest{Title: "t", Category: "c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
