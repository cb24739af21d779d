package messaging

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"cctv_estimator/internal/usecase/interfaces"
)

const whatsAppBaseURL = "https://wa.me/"

var ErrMissingNumber = errors.New("whatsapp number not configured")

// WhatsAppChannel hands messages off through a wa.me deep link. The link is
// opened by the customer's device; delivery is never confirmed.
type WhatsAppChannel struct {
	number string
}

var _ interfaces.IMessagingChannel = (*WhatsAppChannel)(nil)

// NewWhatsAppChannel keeps only the digits of number, so "+91 94221-15003"
// and "919422115003" are equivalent.
func NewWhatsAppChannel(number string) *WhatsAppChannel {
	var sb strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return &WhatsAppChannel{number: sb.String()}
}

func (c *WhatsAppChannel) HandOff(_ context.Context, message string) (string, error) {
	if c.number == "" {
		return "", ErrMissingNumber
	}
	return whatsAppBaseURL + c.number + "?text=" + encodeText(message), nil
}

// encodeText percent-encodes like encodeURIComponent: spaces become %20,
// never "+".
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
