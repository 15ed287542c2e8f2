package enums

type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "Instagram"
	PlatformTikTok    SocialPlatform = "TikTok"
	PlatformYouTube   SocialPlatform = "YouTube"
	PlatformTwitch    SocialPlatform = "Twitch"
)
