package domain

// Comment also serves as the reply shape; replies of replies are not
// modeled, so Replies is always empty one level down.
type Comment struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Timestamp  string    `json:"timestamp"`
	LikesCount int       `json:"likesCount"`
	Owner      Account   `json:"owner"`
	Replies    []Comment `json:"replies"`
}
