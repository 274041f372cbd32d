package game

import "github.com/KirkDiggler/mafia/internal/models"

// ResolveKill decides the mafia's target from each member's chosen ordinal.
// The most chosen ordinal wins if it has at least floor(mafiaSize/2)+1 votes.
// Ordinals outside 1..rosterSize are ignored. Among tied ordinals the lowest
// one is picked.
func ResolveKill(choices map[string]int, mafiaSize, rosterSize int) (int, bool) {
	counts := make(map[int]int, len(choices))
	for _, ordinal := range choices {
		if ordinal < 1 || ordinal > rosterSize {
			continue
		}
		counts[ordinal]++
	}

	best, bestCount := 0, 0
	for ordinal := 1; ordinal <= rosterSize; ordinal++ {
		if counts[ordinal] > bestCount {
			best, bestCount = ordinal, counts[ordinal]
		}
	}

	if bestCount == 0 || bestCount < mafiaSize/2+1 {
		return 0, false
	}
	return best, true
}

// ResolvePurge decides who the village purges from each voter's accusation.
// Skips are ignored, as are accusations against players not in roster. The
// most accused player is purged if they have at least ceil(len(roster)/2)
// accusations. Among tied players the one earliest in roster is picked.
func ResolvePurge(accusations map[string]string, roster []string) (string, bool) {
	counts := make(map[string]int, len(accusations))
	for _, accused := range accusations {
		if accused == SkipVote {
			continue
		}
		counts[accused]++
	}

	best, bestCount := "", 0
	for _, id := range roster {
		if counts[id] > bestCount {
			best, bestCount = id, counts[id]
		}
	}

	if bestCount == 0 || bestCount < (len(roster)+1)/2 {
		return "", false
	}
	return best, true
}

// MafiaCount returns how many of n players are dealt into the mafia
func MafiaCount(n int) int {
	if n <= 5 {
		return 1
	}
	return n/5 + 1
}

// CheckWin returns the winning side, or WinNone while the game should continue
func CheckWin(mafia, villagers int) models.Win {
	if mafia >= villagers {
		return models.WinMafia
	}
	if mafia == 0 {
		return models.WinVillagers
	}
	return models.WinNone
}
