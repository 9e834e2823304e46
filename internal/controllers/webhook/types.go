package webhook

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed authorize.html
var authorizeHTML string

var authorizeTemplate = template.Must(template.New("authorize").Parse(authorizeHTML))

// AuthorizePage is the data rendered on the account linking page.
type AuthorizePage struct {
	// AccountLinkingToken is the token the platform passed to the page.
	AccountLinkingToken string
	// RedirectURI aborts linking when followed without an authorization code.
	RedirectURI string
	// RedirectURISuccess completes linking: RedirectURI plus the authorization code.
	RedirectURISuccess string
	// ServerURL is the public URL of this service.
	ServerURL string
}

func renderAuthorizePage(page AuthorizePage) ([]byte, error) {
	var buf bytes.Buffer
	if err := authorizeTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render authorize page: %w", err)
	}
	return buf.Bytes(), nil
}
