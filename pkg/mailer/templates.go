package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

var verificationCodeTpl = template.Must(template.New("verification_code").Parse(`
<h1>Your Verification Code</h1>
<p>Your verification code is: <strong>{{.Code}}</strong></p>
<p>This code will expire in {{.ExpiresIn}}.</p>
`))

var loginNotificationTpl = template.Must(template.New("login_notification").Parse(`
<h1>New sign-in to your account</h1>
<p>Your account {{.Email}} was just signed in via {{.Method}}.</p>
<p>If this was not you, request a new code to take back the account.</p>
`))

// RenderVerificationCode renders the login-code email body.
func RenderVerificationCode(code string, ttl time.Duration) (string, error) {
	var b strings.Builder
	err := verificationCodeTpl.Execute(&b, map[string]any{
		"Code":      code,
		"ExpiresIn": fmt.Sprintf("%d minutes", int(ttl.Minutes())),
	})
	return b.String(), err
}

// Render resolves a queued job's template name to subject and html body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	switch name {
	case "login_notification":
		var b strings.Builder
		if err := loginNotificationTpl.Execute(&b, data); err != nil {
			return "", "", err
		}
		return "New sign-in to your account", b.String(), nil
	default:
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
}
