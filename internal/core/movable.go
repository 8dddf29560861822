package core

// Movable is the capability set shared by everything the simulation can
// position: a location, a velocity, and setters for both.
type Movable interface {
	Location() Vec2
	Velocity() Vec2
	SetLocation(Vec2)
	SetVelocity(Vec2)
}

// Advance moves m along its velocity for dt seconds.
func Advance(m Movable, dt float32) {
	m.SetLocation(Integrate(m.Location(), m.Velocity(), dt))
}

// Speed returns the magnitude of m's velocity.
func Speed(m Movable) float32 {
	return m.Velocity().Len()
}
