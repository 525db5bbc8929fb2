package mailing

type Message struct {
	From    string
	To      EmailAddress
	Subject string
	HTML    string
}
