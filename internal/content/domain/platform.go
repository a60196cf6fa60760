package domain

import "strings"

// Platform is a social network a SocialLink points at.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformWhatsApp  Platform = "WhatsApp"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTwitter   Platform = "Twitter"
	PlatformFacebook  Platform = "Facebook"
	PlatformYouTube   Platform = "YouTube"
	PlatformBehance   Platform = "Behance"
	PlatformDribbble  Platform = "Dribbble"
)

// FallbackIcon is used for any platform or icon name without a mapping.
const FallbackIcon = "instagram"

var platformIcons = map[Platform]string{
	PlatformInstagram: "instagram",
	PlatformTikTok:    "music",
	PlatformWhatsApp:  "message-circle",
	PlatformLinkedIn:  "linkedin",
	PlatformTwitter:   "twitter",
	PlatformFacebook:  "facebook",
	PlatformYouTube:   "youtube",
	PlatformBehance:   "behance",
	PlatformDribbble:  "dribbble",
}

// iconAliases maps the CMS iconName field (icon set component names) to icon keys.
var iconAliases = map[string]string{
	"instagram":     "instagram",
	"music":         "music",
	"messagecircle": "message-circle",
	"linkedin":      "linkedin",
	"twitter":       "twitter",
	"facebook":      "facebook",
	"youtube":       "youtube",
	"behance":       "behance",
	"dribbble":      "dribbble",
}

// ParsePlatform matches a platform name case-insensitively.
func ParsePlatform(s string) (Platform, bool) {
	for p := range platformIcons {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// Icon returns the icon key for the platform.
func (p Platform) Icon() string {
	if parsed, ok := ParsePlatform(string(p)); ok {
		return platformIcons[parsed]
	}
	return FallbackIcon
}

// Icon resolves the link's icon: an explicit icon name wins over the platform.
func (l SocialLink) Icon() string {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(l.IconName))
	if icon, ok := iconAliases[key]; ok {
		return icon
	}
	return l.Platform.Icon()
}
