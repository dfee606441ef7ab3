package lighting

import (
	"github.com/Faultbox/cubelight/pkg/math"
	"github.com/chewxy/math32"
)

// DirectionFromAngles converts a longitude (rotation around Y, degrees) and
// latitude (elevation above the horizon, degrees) into the direction a
// directional light travels. A latitude of 90 shines straight down.
func DirectionFromAngles(longitude, latitude float32) math.Vec3 {
	lon := math.Radians(longitude)
	lat := math.Radians(latitude)

	// Vector pointing from the scene towards the light.
	towards := math.Vec3{
		X: math32.Cos(lat) * math32.Sin(lon),
		Y: math32.Sin(lat),
		Z: math32.Cos(lat) * math32.Cos(lon),
	}
	return towards.Negate().Normalize()
}

// DirectionTo returns the unit vector from p towards a light of the given
// kind. Directional lights ignore p and position and return the reversed
// direction.
func DirectionTo(kind Kind, position, direction, p math.Vec3) math.Vec3 {
	if kind == Directional {
		return direction.Negate().Normalize()
	}
	return position.Sub(p).Normalize()
}
