package domain

import "testing"

func TestContactRequestComplete(t *testing.T) {
	full := ContactRequest{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	if !full.Complete() {
		t.Fatalf("expected complete request")
	}

	blank := full
	blank.Subject = "   "
	if blank.Complete() {
		t.Fatalf("whitespace-only subject must not count as present")
	}
}

func TestContactRequestTrimmed(t *testing.T) {
	got := ContactRequest{Name: " Ada ", Email: "ada@example.com\n", Subject: "\tHi", Message: "Hello "}.Trimmed()
	want := ContactRequest{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	if got != want {
		t.Fatalf("Trimmed = %+v, want %+v", got, want)
	}
}

func TestIsPDFContentType(t *testing.T) {
	cases := map[string]bool{
		"application/pdf":                 true,
		"application/PDF; charset=binary": true,
		"application/x-pdf":               true,
		"text/html; charset=utf-8":        false,
	}
	for ct, want := range cases {
		if got := IsPDFContentType(ct); got != want {
			t.Fatalf("IsPDFContentType(%q) = %v, want %v", ct, got, want)
		}
	}
	if IsPDFContentType("") {
		t.Fatalf("empty content type must not count as PDF")
	}
}
