package advanced

import "sort"

// Areas of the bounded faces that are at least minArea, in ascending order.
func FilterAreas(faces []Face, minArea float64) []float64 {
	areas := []float64{}
	for _, face := range faces {
		if face.IsBounded() && face.SignedArea >= minArea {
			areas = append(areas, face.SignedArea)
		}
	}
	sort.Float64s(areas)
	return areas
}
