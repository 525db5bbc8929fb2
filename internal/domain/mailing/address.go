package mailing

import "strings"

// EmailAddress is a raw address token taken from typed input or an uploaded sheet.
// It is only trimmed, never normalized or deduplicated.
type EmailAddress string

func NewEmailAddress(raw string) EmailAddress {
	return EmailAddress(strings.TrimSpace(raw))
}

func (a EmailAddress) String() string {
	return string(a)
}

// Domain returns the lower-cased part after the last '@', or "" when there is none.
func (a EmailAddress) Domain() string {
	at := strings.LastIndexByte(string(a), '@')
	if at < 0 || at == len(a)-1 {
		return ""
	}
	return strings.ToLower(string(a[at+1:]))
}

func AddressStrings(addresses []EmailAddress) []string {
	out := make([]string, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, address.String())
	}
	return out
}
