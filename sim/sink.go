package sim

// Sink receives rendered frames. Each frame is preceded by a Clear so the
// previous one is replaced rather than scrolled.
type Sink interface {
	Clear() error
	Draw(frame string) error
}

// FrameRecorder is a Sink that keeps every drawn frame in memory
type FrameRecorder struct {
	Frames []string
	Clears int
}

func (r *FrameRecorder) Clear() error {
	r.Clears++
	return nil
}

func (r *FrameRecorder) Draw(frame string) error {
	r.Frames = append(r.Frames, frame)
	return nil
}

// Last returns the most recent frame, or "" when nothing was drawn
func (r *FrameRecorder) Last() string {
	if len(r.Frames) == 0 {
		return ""
	}
	return r.Frames[len(r.Frames)-1]
}
