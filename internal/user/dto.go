package user

import "net/url"

// UserSummaryResponse represents one user in the list response
type UserSummaryResponse struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	DetailURL string `json:"detail_url"`
}

// SocialLinkResponse represents a social account link
type SocialLinkResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// UserProfileResponse represents the response for a single user profile
type UserProfileResponse struct {
	Login       string                `json:"login"`
	Name        string                `json:"name"`
	AvatarURL   string                `json:"avatar_url"`
	Company     *string               `json:"company"`
	Website     *string               `json:"website"`
	Followers   int                   `json:"followers"`
	Following   int                   `json:"following"`
	PublicRepos int                   `json:"public_repos"`
	SocialURLs  []*SocialLinkResponse `json:"social_urls"`
}

// DetailPath returns the page route for a user's details
func DetailPath(login string) string {
	return "/users/" + url.PathEscape(login)
}

// ToResponse converts a UserSummary model to a UserSummaryResponse DTO
func (u *UserSummary) ToResponse() *UserSummaryResponse {
	return &UserSummaryResponse{
		Login:     u.Login,
		Name:      u.DisplayName(),
		AvatarURL: u.AvatarURL,
		HTMLURL:   u.HTMLURL,
		DetailURL: DetailPath(u.Login),
	}
}

// ToResponse converts a UserProfile model to a UserProfileResponse DTO
func (p *UserProfile) ToResponse() *UserProfileResponse {
	links := make([]*SocialLinkResponse, len(p.SocialURLs))
	for i, l := range p.SocialURLs {
		links[i] = &SocialLinkResponse{Name: l.Name, URL: l.URL}
	}

	return &UserProfileResponse{
		Login:       p.Login,
		Name:        p.Name,
		AvatarURL:   p.AvatarURL,
		Company:     optional(p.Company),
		Website:     optional(p.Blog),
		Followers:   p.Followers,
		Following:   p.Following,
		PublicRepos: p.PublicRepos,
		SocialURLs:  links,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
