package raycast

// CastFan fills buf with one ray per column, evenly spread over fov and
// centred on the player's facing angle. buf is grown only when too small.
func CastFan(g *Grid, p *Player, fov float64, columns int, buf []Ray) []Ray {
	if columns <= 0 {
		return buf[:0]
	}
	if cap(buf) < columns {
		buf = make([]Ray, columns)
	}
	buf = buf[:columns]
	step := fov / float64(columns)
	start := p.Angle - fov/2
	for i := range buf {
		buf[i] = CastRay(g, p.X, p.Y, start+float64(i)*step)
	}
	return buf
}
