// Package twiml renders Twilio Messaging Markup replies.
package twiml

import (
	"encoding/xml"
)

// ContentType is the MIME type Twilio expects for webhook replies.
const ContentType = "text/xml"

type response struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message"`
}

// MessagingResponse renders a <Response> with one <Message> per body.
func MessagingResponse(bodies ...string) (string, error) {
	out, err := xml.Marshal(response{Messages: bodies})
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}
