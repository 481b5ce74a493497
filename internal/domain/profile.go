package domain

// Profile is the cached snapshot of the target account. It is replaced
// wholesale on every refresh; no history is kept.
type Profile struct {
	Username          string   `json:"username"`
	UserID            string   `json:"userid"`
	FullName          string   `json:"fullName"`
	Biography         string   `json:"biography"`
	Bio               string   `json:"bio"`
	ExternalURL       *string  `json:"externalUrl"`
	ProfilePicURL     string   `json:"profilePicUrl"`
	IsPrivate         bool     `json:"isPrivate"`
	IsVerified        bool     `json:"isVerified"`
	IsBusinessAccount bool     `json:"isBusinessAccount"`
	BusinessCategory  *string  `json:"businessCategory"`
	FollowersCount    int      `json:"followersCount"`
	FollowingCount    int      `json:"followingCount"`
	PostsCount        int      `json:"postsCount"`
	IGTVCount         int      `json:"igtvCount"`
	BiographyHashtags []string `json:"biographyHashtags"`
	BiographyMentions []string `json:"biographyMentions"`
	LastUpdated       string   `json:"lastUpdated"`
}

// ExportedProfile is the slimmer shape written by the local export tool.
type ExportedProfile struct {
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Bio            string `json:"bio"`
	ProfilePicURL  string `json:"profilePicUrl"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	LastUpdated    string `json:"lastUpdated"`
}
