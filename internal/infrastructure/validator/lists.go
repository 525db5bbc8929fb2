package validator

import (
	_ "embed"
	"strings"
)

//go:embed disposable_domains.txt
var disposableList string

var disposableDomains = parseDomainList(disposableList)

// commonTypos maps misspelled provider domains to the intended one.
var commonTypos = map[string]string{
	"gmai.com":    "gmail.com",
	"gmal.com":    "gmail.com",
	"gmial.com":   "gmail.com",
	"gmail.co":    "gmail.com",
	"gmail.con":   "gmail.com",
	"gnail.com":   "gmail.com",
	"yaho.com":    "yahoo.com",
	"yahooo.com":  "yahoo.com",
	"yahoo.con":   "yahoo.com",
	"hotmai.com":  "hotmail.com",
	"hotmial.com": "hotmail.com",
	"hotmail.con": "hotmail.com",
	"outlok.com":  "outlook.com",
	"outlook.con": "outlook.com",
	"iclod.com":   "icloud.com",
}

func parseDomainList(raw string) map[string]struct{} {
	domains := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains[line] = struct{}{}
	}
	return domains
}

func isDisposable(domain string) bool {
	_, ok := disposableDomains[domain]
	return ok
}
