package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RewardChest is granted on level-up and opened later by the player. Its
// contents are derived from the level it was granted at, so opening is
// deterministic across sessions.
type RewardChest struct {
	Level int `json:"level"`
}

// experienceToLevel is the cost of advancing from level to level+1,
// triangular-number scaling: level 1 costs 1000, level 2 costs 3000,
// level 3 costs 6000.
func experienceToLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * (level + 1) / 2 * 1000
}

// awardExperience adds the amount and rolls over as many level-ups as the
// total covers. Each level-up grants one reward chest.
func (s *FarmState) awardExperience(amount int) {
	if s == nil || amount <= 0 {
		return
	}
	if s.Level < 1 {
		s.Level = 1
	}
	s.Experience += amount
	for s.Experience >= experienceToLevel(s.Level) {
		s.Experience -= experienceToLevel(s.Level)
		s.Level++
		s.Chests = append(s.Chests, RewardChest{Level: s.Level})
	}
}

// ExperienceToNextLevel reports the remaining experience before the next
// level-up.
func (s *FarmState) ExperienceToNextLevel() int {
	if s == nil {
		return 0
	}
	remaining := experienceToLevel(s.Level) - s.Experience
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ChestReward lists what a chest of the given level yields.
type ChestReward struct {
	Gems  int
	Seeds map[CropKind]int
}

func rewardForLevel(level int) ChestReward {
	if level < 1 {
		level = 1
	}
	rng := seededRNG(int64(level))
	kinds := CropKinds()
	reward := ChestReward{
		Gems:  10 + level*5,
		Seeds: map[CropKind]int{},
	}
	kind := kinds[rng.IntN(len(kinds))]
	reward.Seeds[kind] = 1 + rng.IntN(2)
	return reward
}

// OpenChest opens the chest at index, credits its contents and removes it.
func (s *FarmState) OpenChest(index int) bool {
	if s == nil || index < 0 || index >= len(s.Chests) {
		return false
	}
	reward := rewardForLevel(s.Chests[index].Level)
	s.Gems += reward.Gems
	for kind, count := range reward.Seeds {
		s.Seeds[kind] += count
	}
	s.Chests = append(s.Chests[:index], s.Chests[index+1:]...)
	return true
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic rewards.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
