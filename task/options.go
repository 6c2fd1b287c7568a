package task

import (
	"github.com/uber-go/tally/v4"
)

type Options struct {
	Name        string
	ChannelSize int
	Scope       tally.Scope
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = "anonymous"
	}
	if o.ChannelSize <= 0 {
		o.ChannelSize = 1024
	}
	if o.Scope == nil {
		o.Scope = tally.NoopScope
	}
	return o
}
