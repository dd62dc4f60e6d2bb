package resolver

import (
	"net/url"
	"strings"

	"github.com/rkbennett/logstash-output-opensearch/httpclient"
	"github.com/rkbennett/logstash-output-opensearch/options"
	"github.com/rkbennett/logstash-output-opensearch/secret"
)

// resolveAuth derives basic credentials from the user and password
// settings. Both must be present and the password secret must yield a
// non-empty value; every missing-credential state degrades to no auth.
// Username and password are percent-encoded per RFC 3986.
func resolveAuth(opts options.Options) *httpclient.BasicAuth {
	user := opts.StringOr("user", "")
	if user == "" {
		return nil
	}
	password := secret.Reveal(opts.Secret("password"))
	if password == "" {
		return nil
	}
	return &httpclient.BasicAuth{
		User:     escapeCredential(user),
		Password: escapeCredential(password),
	}
}

// escapeCredential percent-encodes a credential, encoding spaces as %20
// rather than +.
func escapeCredential(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
