package geo

// PointInRing tests a point against a closed boundary ring of (lat,lng)
// vertices with the even-odd (ray casting) rule, applied directly to
// unprojected coordinates. That is acceptable at city scale. Rings with
// fewer than three vertices never match.
func PointInRing(lat, lng float64, ring [][2]float64) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		yi, xi := ring[i][0], ring[i][1]
		yj, xj := ring[j][0], ring[j][1]

		intersects := (yi > lat) != (yj > lat) &&
			lng < (xj-xi)*(lat-yi)/(yj-yi)+xi
		if intersects {
			inside = !inside
		}
		j = i
	}
	return inside
}
