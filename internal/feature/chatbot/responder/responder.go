// Package responder implements the fixed-keyword chatbot.
package responder

import "strings"

// fallback is returned for any message that does not match a known keyword.
const fallback = "Sorry, I didn't understand that. Can you please ask something else?"

// responses maps a lowercased message to its canned reply.
var responses = map[string]string{
	"hello":      "Hello! How can I assist you with disaster information today?",
	"help":       "Sure, I can help! You can ask about safety tips or specific disasters.",
	"flood":      "Floods are dangerous. Make sure to move to higher ground and avoid floodwaters.",
	"earthquake": "In case of an earthquake, drop, cover, and hold on. Stay indoors if you are already inside, and move to an open area away from buildings if you are outside.",
	"cyclone":    "Hurricanes bring strong winds and flooding. Secure your home and evacuate if recommended.",
	"tsunami":    "If you’re near the coast and feel an earthquake, move to higher ground immediately as tsunamis can follow.",
	"bye":        "Goodbye! Stay safe.",
	"thank you":  "You're welcome! Let me know if you need more information.",
}

// Responder answers chat messages by exact keyword lookup.
// It holds no mutable state and is safe for concurrent use.
type Responder struct{}

// New creates a new Responder.
func New() *Responder {
	return &Responder{}
}

// Reply returns the canned response for the message, matching case-insensitively,
// or the fallback text when nothing matches. It never fails.
func (r *Responder) Reply(message string) string {
	if resp, ok := responses[strings.ToLower(message)]; ok {
		return resp
	}
	return fallback
}
