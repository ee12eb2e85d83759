package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_cleanText(t *testing.T) {
	tests := map[string]string{
		"  Grace Hopper ":                 "Grace Hopper",
		"<b>Grace</b>":                    "Grace",
		"Alan<script>alert(1)</script>":   "Alan",
		"O'Neil & Sons":                   "O'Neil & Sons",
		`<a href="javascript:x">link</a>`: "link",
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			require.Equal(t, want, cleanText(input))
		})
	}
}
