package presence

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	defaultAvatarVariants = 5
	animatedAssetPrefix   = "a_"
	assetSize             = 256
)

// CDN builds Discord CDN URLs for avatars and decorations.
type CDN struct {
	baseURL string
}

// NewCDN returns a CDN rooted at baseURL (e.g. https://cdn.discordapp.com).
func NewCDN(baseURL string) CDN {
	return CDN{baseURL: strings.TrimRight(baseURL, "/")}
}

// DefaultAvatarIndex selects one of the default avatar variants from the
// numeric user id. Non-numeric ids map to variant 0.
func DefaultAvatarIndex(userID string) int {
	n, ok := new(big.Int).SetString(userID, 10)
	if !ok || n.Sign() < 0 {
		return 0
	}

	return int(new(big.Int).Mod(n, big.NewInt(defaultAvatarVariants)).Int64())
}

// DefaultAvatarURL is the avatar shown for users without an uploaded one.
func (c CDN) DefaultAvatarURL(userID string) string {
	return fmt.Sprintf("%s/embed/avatars/%d.png", c.baseURL, DefaultAvatarIndex(userID))
}

// AvatarURL resolves an avatar asset hash. Animated hashes are served as gif.
func (c CDN) AvatarURL(userID, hash string) string {
	if hash == "" {
		return c.DefaultAvatarURL(userID)
	}

	ext := "png"
	if strings.HasPrefix(hash, animatedAssetPrefix) {
		ext = "gif"
	}

	return fmt.Sprintf("%s/avatars/%s/%s.%s?size=%d", c.baseURL, userID, hash, ext, assetSize)
}

// DecorationURL resolves an avatar decoration preset asset.
func (c CDN) DecorationURL(asset string) string {
	if asset == "" {
		return ""
	}

	return fmt.Sprintf("%s/avatar-decoration-presets/%s.png?size=%d", c.baseURL, asset, assetSize)
}
