package twiml_test

import (
	"strings"
	"testing"

	"health-tracker/pkg/twiml"
)

func TestMessagingResponse(t *testing.T) {
	out, err := twiml.MessagingResponse("Logged <5 miles> & done")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("missing xml header: %s", out)
	}
	if !strings.Contains(out, "<Response><Message>Logged &lt;5 miles&gt; &amp; done</Message></Response>") {
		t.Errorf("unexpected body: %s", out)
	}
}

func TestMessagingResponse_Empty(t *testing.T) {
	out, err := twiml.MessagingResponse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<Response></Response>") {
		t.Errorf("unexpected body: %s", out)
	}
}
