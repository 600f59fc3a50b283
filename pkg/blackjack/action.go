package blackjack

// Action is a player action the engine can accept
type Action string

// action constants
const (
	ActionPlaceBet     Action = "PLACE_BET"
	ActionBuyInsurance Action = "BUY_INSURANCE"
	ActionNoInsurance  Action = "NO_INSURANCE"
	ActionHit          Action = "HIT"
	ActionStand        Action = "STAND"
	ActionDoubleDown   Action = "DOUBLE_DOWN"
	ActionSplit        Action = "SPLIT"
)
