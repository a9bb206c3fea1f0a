package service

import (
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain name", input: "photo.jpg", want: "photo.jpg"},
		{name: "strips unix path", input: "../../etc/passwd", want: "passwd"},
		{name: "strips windows path", input: `C:\Users\me\pic.png`, want: "pic.png"},
		{name: "replaces spaces", input: "my holiday pic.jpg", want: "my_holiday_pic.jpg"},
		{name: "replaces special chars", input: "a<b>c?.png", want: "a_b_c_.png"},
		{name: "trims leading dots", input: "..hidden.jpg", want: "hidden.jpg"},
		{name: "empty input", input: "", wantErr: true},
		{name: "only unsafe chars", input: "///...", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFilename(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SanitizeFilename(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeFilename(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
