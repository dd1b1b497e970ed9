package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tmplGift           = "gift.html"
	tmplCapsuleCreated = "capsule_created.html"
	tmplCapsuleOpened  = "capsule_opened.html"
)

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// openDateLayout renders capsule open dates in the creation email.
const openDateLayout = "02.01.2006 15:04 MST"

type giftView struct {
	SenderName    string
	RecipientName string
	ViewLink      string
}

type capsuleCreatedView struct {
	Title    string
	OpenDate string
	ViewLink string
}

type capsuleOpenedView struct {
	Title    string
	ViewLink string
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
