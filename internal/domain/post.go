package domain

// MediaType classification for a post.
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeCarousel = "carousel"
)

type Post struct {
	ID              string        `json:"id"`
	Shortcode       string        `json:"shortcode"`
	Typename        string        `json:"typename"`
	Caption         *string       `json:"caption"`
	CaptionHashtags []string      `json:"captionHashtags"`
	CaptionMentions []string      `json:"captionMentions"`
	TaggedUsers     []string      `json:"taggedUsers"`
	MediaType       string        `json:"mediaType"`
	MediaURL        string        `json:"mediaUrl"`
	MediaURLs       []string      `json:"mediaUrls"`
	VideoURL        *string       `json:"videoUrl"`
	VideoDuration   *float64      `json:"videoDuration"`
	SidecarItems    []SidecarItem `json:"sidecarItems"`
	LikeCount       int           `json:"likeCount"`
	CommentCount    int           `json:"commentCount"`
	VideoViewCount  *int          `json:"videoViewCount"`
	Location        *Location     `json:"location"`
	Permalink       string        `json:"permalink"`
	Timestamp       string        `json:"timestamp"`
	IsVideo         bool          `json:"isVideo"`
	IsPinned        bool          `json:"isPinned"`
	IsSponsored     bool          `json:"isSponsored"`
	Likers          []Account     `json:"likers"`
	Comments        []Comment     `json:"comments"`
}

// SidecarItem is one child of a carousel post.
type SidecarItem struct {
	IsVideo    bool    `json:"isVideo"`
	DisplayURL string  `json:"displayUrl"`
	VideoURL   *string `json:"videoUrl"`
}

type Location struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Slug *string  `json:"slug"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}
