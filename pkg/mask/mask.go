// Package mask hides personal data printed on receipts.
package mask

import "strings"

const (
	minEmailLocal = 3
	minPhone      = 8
	minPolicy     = 6

	phoneHead = 3
	phoneTail = 4
)

// Email keeps the first and last character of the local part. Local parts
// shorter than three characters are returned unchanged.
func Email(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, domain := []rune(email[:at]), email[at:]
	if len(local) < minEmailLocal {
		return email
	}
	return keep(local, 1, 1) + domain
}

// Phone keeps the first three and last four characters
func Phone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	runes := []rune(phone)
	if len(runes) < minPhone {
		return phone
	}
	return keep(runes, phoneHead, phoneTail)
}

// Policy masks the middle third of a policy number
func Policy(policy string) string {
	runes := []rune(policy)
	if len(runes) < minPolicy {
		return policy
	}
	third := len(runes) / 3
	return keep(runes, third, third)
}

// CardNumber keeps only the last four digits
func CardNumber(number string) string {
	digits := []rune(strings.ReplaceAll(number, " ", ""))
	if len(digits) <= 4 {
		return string(digits)
	}
	return keep(digits, 0, 4)
}

// keep shows head and tail runes and stars everything between them
func keep(runes []rune, head, tail int) string {
	return string(runes[:head]) + strings.Repeat("*", len(runes)-head-tail) + string(runes[len(runes)-tail:])
}
