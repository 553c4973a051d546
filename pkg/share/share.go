// Package share builds social share links for article pages
package share

import (
	"fmt"
	"net/url"
)

// Platform is a share target
type Platform string

// enum of supported share targets
const (
	Twitter  Platform = "twitter"
	Facebook Platform = "facebook"
	LinkedIn Platform = "linkedin"
	Copy     Platform = "copy"
)

// Platforms lists share targets in menu order
var Platforms = []Platform{Twitter, Facebook, LinkedIn, Copy}

// Label returns the menu label of the platform
func (p Platform) Label() string {
	switch p {
	case Twitter:
		return "Twitter"
	case Facebook:
		return "Facebook"
	case LinkedIn:
		return "LinkedIn"
	case Copy:
		return "Copy link"
	default:
		return string(p)
	}
}

// URL returns the link sharing pageURL on the platform. For Copy it is the page URL itself.
func URL(p Platform, pageURL, title string) (string, error) {
	if title == "" {
		title = "Great article"
	}
	u, t := url.QueryEscape(pageURL), url.QueryEscape(title)
	switch p {
	case Twitter:
		return fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", u, t), nil
	case Facebook:
		return fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", u), nil
	case LinkedIn:
		return fmt.Sprintf("https://www.linkedin.com/shareArticle?mini=true&url=%s&title=%s", u, t), nil
	case Copy:
		return pageURL, nil
	default:
		return "", fmt.Errorf("unsupported share platform %q", p)
	}
}
