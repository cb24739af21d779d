package interfaces

import "context"

// IMessagingChannel hands a preformatted message to an external messaging
// app. It returns the deep link the customer's device opens. Delivery is
// never confirmed.
type IMessagingChannel interface {
	HandOff(ctx context.Context, message string) (link string, err error)
}
