package messaging

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppChannel_HandOff(t *testing.T) {
	t.Run("builds deep link", func(t *testing.T) {
		ch := NewWhatsAppChannel("+91 94221-15003")
		msg := "*New Inquiry from Website*\n\nName: Ravi & Co\nTotal: ₹8,900"

		link, err := ch.HandOff(context.Background(), msg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(link, "https://wa.me/919422115003?text=") {
			t.Fatalf("unexpected link: %s", link)
		}
		if strings.Contains(link, "+") {
			t.Fatalf("spaces must be encoded as %%20: %s", link)
		}

		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("link must parse: %v", err)
		}
		if got := u.Query().Get("text"); got != msg {
			t.Fatalf("round trip mismatch: %q", got)
		}
	})

	t.Run("missing number", func(t *testing.T) {
		_, err := NewWhatsAppChannel(" ").HandOff(context.Background(), "hi")
		if !errors.Is(err, ErrMissingNumber) {
			t.Fatalf("expected ErrMissingNumber, got %v", err)
		}
	})
}
