// Package channel implements reminder delivery channels.
//
// Each channel takes a recipient, subject and HTML body and reports the
// outcome as a Result tag instead of an error: an unconfigured transport or
// an unsupported method is an expected no-op (skipped), not a failure.
package channel

import (
	"context"

	"romantic-api/modules/reminder/entity"
)

// Result is the outcome of one dispatch attempt.
type Result struct {
	Status  string
	Details string
}

// Message is the rendered reminder handed to a channel.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Channel delivers a reminder message. Send never panics and never returns
// an error: transport problems are folded into the Result.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) Result
}

// Registry maps reminder methods to channels.
type Registry struct {
	channels map[string]Channel
}

func NewRegistry(channels ...Channel) *Registry {
	r := &Registry{channels: make(map[string]Channel, len(channels))}
	for _, ch := range channels {
		r.channels[ch.Name()] = ch
	}
	return r
}

func (r *Registry) Get(name string) (Channel, bool) {
	ch, ok := r.channels[name]
	return ch, ok
}

// Skipped builds a skipped result with a diagnostic.
func Skipped(details string) Result {
	return Result{Status: entity.StatusSkipped, Details: details}
}

// Failed builds a failed result carrying the transport error text.
func Failed(err error) Result {
	return Result{Status: entity.StatusFailed, Details: err.Error()}
}

// Sent is the success result.
func Sent() Result {
	return Result{Status: entity.StatusSent}
}
