package cache

// Key layout. The status key is global; the data keys are namespaced by
// username.
const KeyRefreshStatus = "refresh_status"

func KeyProfile(username string) string     { return "profile:" + username }
func KeyPosts(username string) string       { return "posts:" + username }
func KeyFollowers(username string) string   { return "followers:" + username }
func KeyFollowing(username string) string   { return "following:" + username }
func KeyLastRefresh(username string) string { return "last_refresh:" + username }
