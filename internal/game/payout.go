package game

// The documented game rule, not real roulette odds: zero always loses,
// every other even number pays 1.5x the bet, odd numbers lose the bet.

// IsWin reports whether a drawn result pays out.
func IsWin(result int) bool {
	return result != 0 && result%2 == 0
}

// WinAmount is the total credited on a win (1.5x the bet). Bets are
// whole coins; odd bets round the half coin down everywhere
// consistently, so spin, ledger, and balance always agree.
func WinAmount(bet int64) int64 {
	return bet + bet/2
}

// BalanceDelta is the net effect of a settled spin on the balance.
func BalanceDelta(bet int64, isWin bool) int64 {
	if isWin {
		return WinAmount(bet) - bet
	}
	return -bet
}
