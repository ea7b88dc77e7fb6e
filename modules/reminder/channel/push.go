package channel

import (
	"context"

	"romantic-api/core/constants"
)

// PushChannel is a deliberate placeholder: the method is accepted and every
// dispatch attempt is logged as skipped until a push integration exists.
type PushChannel struct{}

func NewPushChannel() *PushChannel {
	return &PushChannel{}
}

func (c *PushChannel) Name() string {
	return constants.ChannelPush
}

func (c *PushChannel) Send(ctx context.Context, msg Message) Result {
	return Skipped("push not implemented")
}
