package mailer

import (
	"bytes"
	"html/template"
)

// TemplateData feeds the branded email layout used when the caller does not
// supply raw HTML.
type TemplateData struct {
	Title      string
	Message    string
	ButtonText string
	ButtonLink string
	FooterText string
}

var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#faf5ff;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr>
      <td align="center" style="padding:32px 16px;">
        <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:12px;overflow:hidden;">
          <tr>
            <td style="background-color:#d946ef;padding:24px;text-align:center;">
              <h1 style="margin:0;color:#ffffff;font-size:24px;">Cute Mark</h1>
            </td>
          </tr>
          <tr>
            <td style="padding:32px;">
              <h2 style="margin-top:0;color:#1f2937;font-size:20px;">{{.Title}}</h2>
              <p style="color:#4b5563;font-size:15px;line-height:1.6;">{{.Message}}</p>
              {{if and .ButtonText .ButtonLink}}
              <table role="presentation" cellpadding="0" cellspacing="0" style="margin:24px auto;">
                <tr>
                  <td style="background-color:#d946ef;border-radius:8px;">
                    <a href="{{.ButtonLink}}" style="display:inline-block;padding:12px 28px;color:#ffffff;text-decoration:none;font-weight:bold;">{{.ButtonText}}</a>
                  </td>
                </tr>
              </table>
              {{end}}
            </td>
          </tr>
          <tr>
            <td style="background-color:#faf5ff;padding:16px;text-align:center;">
              <p style="margin:0;color:#9ca3af;font-size:12px;">{{if .FooterText}}{{.FooterText}}{{else}}© Cute Mark. All rights reserved.{{end}}</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

// BuildTemplate renders the branded layout with the given content.
func BuildTemplate(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
