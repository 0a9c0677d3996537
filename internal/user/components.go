package user

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/fkhayef/ghusers/internal/view"
)

// NotAvailable is rendered in place of an empty optional profile field
const NotAvailable = "N/A"

func listComponent(st view.State[[]*UserSummary]) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="user-list"><h1>GitHub Users</h1>`)
		if st.IsFailed() {
			writeError(&b, "Error fetching users: ", st.Err)
		} else {
			b.WriteString("<ul>")
			for _, u := range st.Value {
				writeUserRow(&b, u)
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</div>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeUserRow(b *strings.Builder, u *UserSummary) {
	name := templ.EscapeString(u.DisplayName())

	b.WriteString(`<li data-login="` + templ.EscapeString(u.Login) + `">`)
	b.WriteString(`<img src="` + safeURL(u.AvatarURL) + `" alt="Avatar for ` + name + `">`)
	b.WriteString("<div><h2>" + name + "</h2>")
	b.WriteString("<p>@" + templ.EscapeString(u.Login) + "</p>")
	b.WriteString(`<a href="` + safeURL(DetailPath(u.Login)) + `">View Details</a>`)
	if u.HTMLURL != "" {
		b.WriteString(` <a class="profile" href="` + safeURL(u.HTMLURL) + `">GitHub profile</a>`)
	}
	b.WriteString("</div></li>")
}

func detailComponent(st view.State[*UserProfile]) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="user-details"><h1>User Details</h1>`)
		switch {
		case st.IsLoading():
			b.WriteString(`<p class="loading">Loading user details...</p>`)
		case st.IsFailed():
			writeError(&b, "Error fetching details: ", st.Err)
		case st.IsLoaded() && st.Value != nil:
			writeProfile(&b, st.Value)
		}
		b.WriteString("</div>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeProfile(b *strings.Builder, p *UserProfile) {
	login := templ.EscapeString(p.Login)
	name := p.Name
	if name == "" {
		name = p.Login
	}

	b.WriteString("<div>")
	b.WriteString(`<img src="` + safeURL(p.AvatarURL) + `" alt="Avatar for ` + login + `">`)
	b.WriteString("<h2>" + templ.EscapeString(name) + "</h2>")
	b.WriteString("<p>Username: @" + login + "</p>")
	b.WriteString("<p>Company: " + templ.EscapeString(orNotAvailable(p.Company)) + "</p>")
	b.WriteString("<p>Website: " + templ.EscapeString(orNotAvailable(p.Blog)) + "</p>")
	b.WriteString("<p>Social handles:</p>")
	b.WriteString(`<ul class="social">`)
	for _, l := range p.SocialURLs {
		b.WriteString(`<li><a href="` + safeURL(l.URL) + `" target="_blank" rel="noreferrer">`)
		b.WriteString(templ.EscapeString(l.Name) + "</a></li>")
	}
	b.WriteString("</ul>")
	b.WriteString("<p>Followers: " + strconv.Itoa(p.Followers) + "</p>")
	b.WriteString("<p>Following: " + strconv.Itoa(p.Following) + "</p>")
	b.WriteString("<p>Public repositories: " + strconv.Itoa(p.PublicRepos) + "</p>")
	b.WriteString("</div>")
}

func writeError(b *strings.Builder, prefix, msg string) {
	b.WriteString(`<p class="error">` + templ.EscapeString(prefix+msg) + "</p>")
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// safeURL drops unsafe schemes such as javascript: and escapes the result
// for use inside an attribute.
func safeURL(s string) string {
	return templ.EscapeString(string(templ.URL(s)))
}
