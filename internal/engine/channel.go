package engine

import "github.com/san-kum/sortviz/internal/sorting"

// ChannelRenderer forwards frames to a bounded channel. Render blocks while
// the channel is full, so the producer stays at most cap(frames) frames
// ahead of the consumer and frames arrive in emission order.
type ChannelRenderer struct {
	frames chan sorting.Frame
}

func NewChannelRenderer(buffer int) *ChannelRenderer {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelRenderer{frames: make(chan sorting.Frame, buffer)}
}

func (r *ChannelRenderer) Render(f sorting.Frame) { r.frames <- f }

func (r *ChannelRenderer) Frames() <-chan sorting.Frame { return r.frames }
