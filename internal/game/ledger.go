package game

// Ledger operations check their preconditions before touching any field, so
// a rejected transaction leaves money and counts exactly as they were. Money
// and counts can never go negative.

func (s *FarmState) BuySeed(kind CropKind) bool {
	if s == nil {
		return false
	}
	if _, ok := ParseCropKind(string(kind)); !ok {
		return false
	}
	cost := CropSpecFor(kind).SeedCost
	if s.Money < cost {
		return false
	}
	s.Money -= cost
	s.Seeds[kind]++
	return true
}

func (s *FarmState) SellCrop(kind CropKind) bool {
	if s == nil {
		return false
	}
	if _, ok := ParseCropKind(string(kind)); !ok {
		return false
	}
	if s.Harvested[kind] < 1 {
		return false
	}
	s.Harvested[kind]--
	s.Money += CropSpecFor(kind).SellPrice
	return true
}

func (s *FarmState) SellProduct(kind ProductKind) bool {
	if s == nil {
		return false
	}
	if _, ok := ParseProductKind(string(kind)); !ok {
		return false
	}
	if s.Products[kind] < 1 {
		return false
	}
	s.Products[kind]--
	s.Money += ProductSpecFor(kind).SellPrice
	return true
}
