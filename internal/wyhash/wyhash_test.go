package wyhash

import (
	"strings"
	"testing"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint64
	}{
		{name: "empty", in: "", want: 0xa0761d6478bd642f},
		{name: "one", in: "a", want: 0x740640eb877718be},
		{name: "three", in: "abc", want: 0xe3ceb03c39a692f8},
		{name: "four", in: "abcd", want: 0x0980b9c2b7e135f4},
		{name: "seven", in: "abcdefg", want: 0x3e6f97ebdb6e86b2},
		{name: "eight", in: "abcdefgh", want: 0xf396d999f576c510},
		{name: "twelve", in: "hello wyhash", want: 0x54f8177a1aa6370d},
		{name: "sixteen", in: "0123456789abcdef", want: 0x551abcc05e20ec30},
		{name: "quoted", in: "'0123456789abcdef'", want: 0x266676e79817c41a},
		{name: "stripe", in: alphanumeric, want: 0x869263c711dd9bf2},
		{name: "stripes", in: strings.Repeat(alphanumeric, 2), want: 0xa1493b6b52459eb8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum64String(tt.in); got != tt.want {
				t.Fatalf("Sum64String(%q) = %#016x, want %#016x", tt.in, got, tt.want)
			}
			if got := Sum64([]byte(tt.in)); got != tt.want {
				t.Fatalf("Sum64(%q) = %#016x, want %#016x", tt.in, got, tt.want)
			}
		})
	}
}

func TestSum64SingleByteChange(t *testing.T) {
	a := strings.Repeat("x", 500)
	b := a[:250] + "y" + a[251:]

	if Sum64String(a) == Sum64String(b) {
		t.Fatalf("payloads differing in one byte have the same hash")
	}
}
