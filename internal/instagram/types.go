package instagram

import "time"

// Source typenames as exposed by the graph API. The normalizer classifies
// media kinds from these.
const (
	TypenameImage   = "GraphImage"
	TypenameVideo   = "GraphVideo"
	TypenameSidecar = "GraphSidecar"
)

// Profile is the source-side account record. Fields the source may omit
// for some account types are pointers; the normalizer applies the neutral
// defaults.
type Profile struct {
	UserID            int64
	Username          string
	FullName          string
	Biography         string
	ExternalURL       *string
	ProfilePicURL     string
	IsPrivate         bool
	IsVerified        bool
	IsBusinessAccount bool
	BusinessCategory  *string
	FollowersCount    int
	FollowingCount    int
	PostsCount        int
	IGTVCount         int
	BiographyHashtags []string
	BiographyMentions []string
}

// Post is the source-side media record.
type Post struct {
	MediaID       int64
	Shortcode     string
	Typename      string
	Caption       *string
	Hashtags      []string
	Mentions      []string
	TaggedUsers   []string
	DisplayURL    string
	VideoURL      *string
	VideoDuration *float64
	SidecarNodes  []SidecarNode
	LikeCount     int
	CommentCount  int
	ViewCount     *int
	Location      *Location
	TakenAt       time.Time
	IsVideo       bool
	IsPinned      bool
	IsSponsored   bool
}

type SidecarNode struct {
	IsVideo    bool
	DisplayURL string
	VideoURL   *string
}

type Location struct {
	ID   int64
	Name string
	Slug *string
	Lat  *float64
	Lng  *float64
}

// Account is the source-side shape shared by likers, followers, followees
// and comment owners.
type Account struct {
	Username      string
	FullName      string
	ProfilePicURL string
	IsVerified    bool
	IsPrivate     bool
}

type Comment struct {
	ID         int64
	Text       string
	CreatedAt  time.Time
	LikesCount int
	Owner      Account
	// Replies carries the preview answers the source inlines with the
	// comment page, so fetching them costs no extra request.
	Replies []Comment
}
