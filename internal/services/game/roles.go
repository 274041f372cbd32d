package game

import "github.com/KirkDiggler/mafia/internal/shuffle"

// Roles is the result of dealing roles to players
type Roles struct {
	// Players is the roster in display order
	Players   []Player
	Mafia     []Player
	Villagers []Player

	// Doctor and Detective are villagers, Detective is nil for small games
	Doctor    Player
	Detective Player
}

// AllocateRoles deals roles to players. The roster is shuffled, split into
// mafia and villagers, then shuffled again so ordinals don't give away the
// deal. The input slice is not modified.
func AllocateRoles(shuffler shuffle.Shuffler, players []Player) *Roles {
	dealt := make([]Player, len(players))
	copy(dealt, players)
	shuffler.Shuffle(len(dealt), func(i, j int) {
		dealt[i], dealt[j] = dealt[j], dealt[i]
	})

	nMafia := MafiaCount(len(dealt))
	if nMafia > len(dealt) {
		nMafia = len(dealt)
	}

	roles := &Roles{
		Mafia:     append([]Player{}, dealt[:nMafia]...),
		Villagers: append([]Player{}, dealt[nMafia:]...),
	}

	if len(roles.Villagers) > 0 {
		roles.Doctor = roles.Villagers[0]
	}
	if len(dealt) > 5 && len(roles.Villagers) > 1 {
		roles.Detective = roles.Villagers[1]
	}

	shuffler.Shuffle(len(dealt), func(i, j int) {
		dealt[i], dealt[j] = dealt[j], dealt[i]
	})
	roles.Players = dealt

	return roles
}
