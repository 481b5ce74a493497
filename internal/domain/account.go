package domain

// Account is the shared shape for likers, followers, following and
// comment owners.
type Account struct {
	Username      string `json:"username"`
	FullName      string `json:"fullName"`
	ProfilePicURL string `json:"profilePicUrl"`
	IsVerified    bool   `json:"isVerified"`
	IsPrivate     bool   `json:"isPrivate"`
}
