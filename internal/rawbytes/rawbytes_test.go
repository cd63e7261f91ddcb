package rawbytes

import "testing"

func TestBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"simple", "hello"},
		{"high bytes", "caf\xe9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bytes(tt.input)
			if tt.input == "" {
				if got != nil {
					t.Fatalf("Bytes(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if string(got) != tt.input {
				t.Fatalf("Bytes(%q) = %q", tt.input, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"nil", nil, ""},
		{"empty", []byte{}, ""},
		{"simple", []byte("hello"), "hello"},
		{"high bytes", []byte{0x63, 0x61, 0x66, 0xe9}, "caf\xe9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input); got != tt.want {
				t.Fatalf("String(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := "round trip \x00\xff payload"
	if got := String(Bytes(original)); got != original {
		t.Fatalf("round trip: got %q, want %q", got, original)
	}
}
