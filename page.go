package handbook

type Page struct {
	MetaTags []map[string]string
	Title    string
	Language string
	Header   HeaderView
	Social   []SocialLink
	Contents MarkdownPage
}
