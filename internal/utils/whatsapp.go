package utils

import (
	"net/url"
)

// waBaseURL is the WhatsApp click-to-chat endpoint. The link is opened in a
// new browsing context; nothing is read back.
const waBaseURL = "https://wa.me/"

// WhatsAppLink builds a wa.me deep link for a phone number and an optional
// prefilled message. The number may be in local notation or already
// canonical.
func WhatsAppLink(phone, message string) (string, error) {
	canonical := phone
	if !IsCanonicalPhone(phone) {
		var err error
		canonical, err = NormalizePhoneNumber(phone)
		if err != nil {
			return "", err
		}
	}

	link := waBaseURL + canonical
	if message != "" {
		link = link + "?text=" + url.QueryEscape(message)
	}
	return link, nil
}
