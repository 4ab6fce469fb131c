package picker

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithInitialColour sets the colour the controller starts from.
func WithInitialColour(s string) Option {
	return func(c *Controller) {
		c.initial = s
	}
}

// WithDebounce sets the quiet period for text edits.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithDisplay sets the display receiving redisplays and palettes.
func WithDisplay(d Display) Option {
	return func(c *Controller) {
		if d != nil {
			c.display = d
		}
	}
}
