package domain

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// CapsuleViewLink builds the public page link for a capsule.
func CapsuleViewLink(baseURL string, id uuid.UUID) string {
	return viewLink(baseURL, "view-capsule.html", id)
}

// GiftViewLink builds the public page link for a gift.
func GiftViewLink(baseURL string, id uuid.UUID) string {
	return viewLink(baseURL, "view-gift.html", id)
}

func viewLink(baseURL, page string, id uuid.UUID) string {
	return strings.TrimRight(baseURL, "/") + "/" + page + "?id=" + url.QueryEscape(id.String())
}
