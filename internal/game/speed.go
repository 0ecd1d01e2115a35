package game

const (
	StartSpeed = 90.0
	MaxSpeed   = 220.0
	SpeedAccel = 0.4
)

// Speed is the scroll speed in columns per second.
type Speed struct {
	Start   float64
	Current float64
	Max     float64
	Accel   float64
}

func NewSpeed() Speed {
	return Speed{Start: StartSpeed, Current: StartSpeed, Max: MaxSpeed, Accel: SpeedAccel}
}

func (s *Speed) Update(dt float64) {
	s.Current = min(s.Current+s.Accel*dt, s.Max)
}

func (s *Speed) Reset() {
	s.Current = s.Start
}
