package domain

// Platform identifies the social network a post was published to.
type Platform string

const (
	PlatformTwitter   Platform = "TWITTER"
	PlatformLinkedIn  Platform = "LINKEDIN"
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformInstagram Platform = "INSTAGRAM"
)

// Platforms lists every supported platform in a stable order.
var Platforms = []Platform{
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformInstagram,
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformLinkedIn, PlatformFacebook, PlatformInstagram:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}
