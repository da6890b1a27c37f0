package models

// MailMessage is the JSON body posted to the external mail-dispatch function.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
