package game

const experienceCook = 200

// Cook converts harvested crops into one unit of a product. The whole recipe
// is validated against current stock before anything is consumed; an
// unsatisfied recipe is a no-op and never partially drains ingredients.
func (s *FarmState) Cook(kind ProductKind) bool {
	if s == nil {
		return false
	}
	if _, ok := ParseProductKind(string(kind)); !ok {
		return false
	}
	spec := ProductSpecFor(kind)
	for _, ingredient := range spec.Recipe {
		if s.Harvested[ingredient.Crop] < ingredient.Count {
			return false
		}
	}
	for _, ingredient := range spec.Recipe {
		s.Harvested[ingredient.Crop] -= ingredient.Count
	}
	s.Products[kind]++
	s.awardExperience(experienceCook)
	return true
}
