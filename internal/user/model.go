package user

// UserSummary is one entry of the GitHub users listing
type UserSummary struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	HTMLURL   string `json:"html_url"`
}

// DisplayName returns the name, or the login when the name is empty
func (u *UserSummary) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// SocialLink is a named link to one of a user's social accounts
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// UserProfile is the extended profile of a single GitHub user.
// Company and Blog are empty when GitHub reports them absent or null.
type UserProfile struct {
	Login       string       `json:"login"`
	AvatarURL   string       `json:"avatar_url"`
	Name        string       `json:"name"`
	Company     string       `json:"company"`
	Blog        string       `json:"blog"`
	Followers   int          `json:"followers"`
	Following   int          `json:"following"`
	PublicRepos int          `json:"public_repos"`
	SocialURLs  []SocialLink `json:"social_urls"`
}
