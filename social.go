package handbook

// SocialLink is an external icon link rendered in the page footer.
type SocialLink struct {
	Name  string
	HRef  string
	Icon  string
	Class string
}

const (
	socialTarget = "_blank"
	socialRel    = "noopener noreferrer"
)

// SocialLinks returns the GitHub, Slack and Facebook links, in that order,
// pointing at the configured URLs.
func SocialLinks(meta SiteMetadata) []SocialLink {
	return []SocialLink{
		{
			Name:  "GitHub",
			HRef:  meta.GithubURL,
			Icon:  "github",
			Class: "text-icon-inverted mr-5",
		},
		{
			Name:  "Slack",
			HRef:  meta.SlackURL,
			Icon:  "slack",
			Class: "text-icon-inverted mr-5",
		},
		{
			Name:  "Facebook",
			HRef:  meta.FacebookURL,
			Icon:  "facebook",
			Class: "text-icon-inverted",
		},
	}
}

func (l SocialLink) Target() string {
	return socialTarget
}

func (l SocialLink) Rel() string {
	return socialRel
}
