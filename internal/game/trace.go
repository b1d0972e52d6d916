package game

// Trace is the recorded flight of one shot: the aim that produced it, the
// wind it flew in, and sampled positions along its arc. A player's most
// recent trace restores their aim at the start of their next turn.
type Trace struct {
	Power  float64
	Angle  float64
	Wind   float64
	Points []Vec2
}

// tracer samples a shell's position at a fixed interval until the shot
// resolves.
type tracer struct {
	shell   *Shell
	display Display
	event   *TickEvent
	points  []Vec2
}

func newTracer(clock *Clock, display Display, shell *Shell, interval float64) *tracer {
	tr := &tracer{shell: shell, display: display}
	tr.event = clock.Schedule(interval, tr.sample)
	return tr
}

func (tr *tracer) sample(float64) {
	tr.points = append(tr.points, tr.shell.Pos)
	tr.display.TracePoint(tr.shell.Pos)
}

// End stops sampling and returns the collected points.
func (tr *tracer) End(clock *Clock) []Vec2 {
	clock.Cancel(tr.event)
	return tr.points
}
