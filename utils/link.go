package utils

import "strings"

// BuildTrackingLink appends the click_id correlation parameter to the
// affiliate base URL, using '&' when the base already carries a query
// string and '?' otherwise.
func BuildTrackingLink(baseURL, nonce string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "click_id=" + nonce
}
