package mdtext

import "regexp"

var htmlComment = regexp.MustCompile(`(?s)<!--.*?-->`)

// RemoveComments strips HTML comments from a markdown body. Authoring
// notes live in comments and must not reach derivation or rendering.
func RemoveComments(body string) string {
	return htmlComment.ReplaceAllString(body, "")
}
