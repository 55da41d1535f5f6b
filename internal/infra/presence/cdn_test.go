package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAvatarIndex(t *testing.T) {
	tests := []struct {
		userID string
		want   int
	}{
		{userID: "100000000000000000", want: 0},
		{userID: "100000000000000005", want: 0},
		{userID: "100000000000000003", want: 3},
		{userID: "18446744073709551619", want: 4}, // larger than uint64
		{userID: "7", want: 2},
		{userID: "not-a-number", want: 0},
		{userID: "", want: 0},
		{userID: "-3", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultAvatarIndex(tt.userID))
		})
	}

	assert.Equal(t, DefaultAvatarIndex("100000000000000000"), DefaultAvatarIndex("100000000000000005"))
}

func TestCDN_AvatarURL(t *testing.T) {
	cdn := NewCDN("https://cdn.discordapp.com/")

	assert.Equal(t,
		"https://cdn.discordapp.com/avatars/42/abc123.png?size=256",
		cdn.AvatarURL("42", "abc123"))
	assert.Equal(t,
		"https://cdn.discordapp.com/avatars/42/a_abc123.gif?size=256",
		cdn.AvatarURL("42", "a_abc123"))
	assert.Equal(t,
		"https://cdn.discordapp.com/embed/avatars/2.png",
		cdn.AvatarURL("42", ""))
}

func TestCDN_DecorationURL(t *testing.T) {
	cdn := NewCDN("https://cdn.discordapp.com")

	assert.Equal(t,
		"https://cdn.discordapp.com/avatar-decoration-presets/a_deco.png?size=256",
		cdn.DecorationURL("a_deco"))
	assert.Empty(t, cdn.DecorationURL(""))
}
