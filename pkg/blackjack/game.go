package blackjack

import (
	"errors"
	"fmt"
	"strings"

	"blackjack-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// ErrHandNotPlaying is an error when an action targets a hand that is not in play.
// The transport layer is expected to prevent this; it is a caller-contract breach.
var ErrHandNotPlaying = errors.New("hand is not in play")

// ErrNoPlayerHands is an error when insurance is resolved with no hands dealt
var ErrNoPlayerHands = errors.New("no player hands")

// ErrNoInsurancePending is an error when insurance is resolved without an
// open insurance offer. The transport layer is expected to prevent this; it
// is a caller-contract breach.
var ErrNoInsurancePending = errors.New("no insurance decision pending")

// Game is the blackjack rules engine. It owns all rule policy and holds no
// per-session state; every operation transforms the RoundState it is given.
type Game struct {
	options Options
	logger  logrus.FieldLogger
}

// New returns a new blackjack engine
func New(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.Decks <= 0 {
		return nil, errors.New("decks must be > 0")
	}

	if options.StartingBalance <= 0 {
		return nil, errors.New("starting balance must be > 0")
	}

	if options.ReshuffleRatio < 0 || options.ReshuffleRatio > 1 {
		return nil, errors.New("reshuffle ratio must be between 0 and 1")
	}

	if options.DealerStandValue <= 0 {
		return nil, errors.New("dealer stand value must be > 0")
	}

	return &Game{
		options: options,
		logger:  logger,
	}, nil
}

// StartGame returns a fresh session state awaiting its first bet
func (g *Game) StartGame() *RoundState {
	return &RoundState{
		DealerHand:       NewHand(0),
		PlayerHands:      []*Hand{},
		PlayerBalance:    g.options.StartingBalance,
		Message:          "Welcome to Blackjack! Place a bet.",
		AvailableActions: []Action{ActionPlaceBet},
	}
}

// PlaceBet starts a new round with the specified stake.
// A rejected bet sets the message and leaves the state otherwise unchanged.
func (g *Game) PlaceBet(state *RoundState, amount float64) error {
	if amount <= 0 || amount > state.PlayerBalance {
		state.Message = "invalid bet amount"
		return nil
	}

	message := ""
	if state.Shoe == nil || state.Shoe.NeedsReshuffle(g.options.ReshuffleRatio) {
		shoe := deck.NewShoe(g.options.Decks)
		shoe.Shuffle(0)
		state.Shoe = shoe
		message = "Shoe reshuffled. "

		g.logger.WithFields(logrus.Fields{
			"decks": g.options.Decks,
			"seed":  shoe.GetSeed(),
		}).Info("built a fresh shoe")
	}

	state.DealerHand = NewHand(0)
	state.PlayerBalance -= amount

	hand := NewHand(amount)
	state.PlayerHands = []*Hand{hand}
	state.RoundOver = false
	state.Message = message + "Round started."

	// deal order: player, player, dealer, dealer
	for _, h := range []*Hand{hand, hand, state.DealerHand, state.DealerHand} {
		card, err := state.Shoe.Draw()
		if err != nil {
			return err
		}

		h.AddCard(card)
	}

	// the dealer showing an ace offers insurance before any blackjack check
	if state.DealerHand.Cards.FirstCard().Rank == deck.Ace && state.PlayerBalance >= amount/2 {
		state.Message = message + fmt.Sprintf("Dealer shows an ace. Buy insurance for %.2f?", amount/2)
		state.AvailableActions = []Action{ActionBuyInsurance, ActionNoInsurance}
		return nil
	}

	g.checkInitialBlackjacks(state, message)
	return nil
}

// ResolveInsurance settles the insurance decision on the original hand.
// Insurance pays 2:1 on the half-bet stake when the dealer holds a natural.
// If the dealer has no blackjack, play opens on the first hand.
func (g *Game) ResolveInsurance(state *RoundState, buy bool) error {
	if len(state.PlayerHands) == 0 {
		return ErrNoPlayerHands
	}

	if !state.InsurancePending() {
		return ErrNoInsurancePending
	}

	hand := state.PlayerHands[0]
	bet := hand.BetAmount

	if buy {
		state.PlayerBalance -= bet / 2
	}

	if state.DealerHand.Value() == 21 {
		if buy {
			state.Message = "Dealer has blackjack. Insurance pays 2:1. "
			state.PlayerBalance += bet
		} else {
			state.Message = "Dealer has blackjack. "
		}

		// the main bet pushes on a simultaneous player natural
		if hand.IsBlackjack() {
			hand.Status = HandStatusBlackjack
			state.Message += "Main bet pushes."
			state.PlayerBalance += bet
		} else {
			hand.Status = HandStatusStood
			state.Message += "Main bet loses."
		}

		g.endRound(state)
		return nil
	}

	if buy {
		state.Message = "Dealer does not have blackjack. Insurance lost. Your turn."
	} else {
		state.Message = "Dealer does not have blackjack. Your turn."
	}

	g.checkInitialBlackjacks(state, "")
	return nil
}

// Hit deals one card to the hand at handIndex
func (g *Game) Hit(state *RoundState, handIndex int) error {
	hand, err := g.playingHand(state, handIndex)
	if err != nil {
		return err
	}

	card, err := state.Shoe.Draw()
	if err != nil {
		return err
	}

	hand.AddCard(card)

	if hand.Value() > 21 {
		hand.Status = HandStatusBusted
		state.Message = fmt.Sprintf("You busted on hand %d!", handIndex+1)
		return g.endPlayerTurnIfDone(state)
	}

	state.Message = fmt.Sprintf("You drew %s on hand %d.", card, handIndex+1)
	state.AvailableActions = g.availableActions(state, handIndex)
	return nil
}

// Stand ends play on the hand at handIndex
func (g *Game) Stand(state *RoundState, handIndex int) error {
	hand, err := g.playingHand(state, handIndex)
	if err != nil {
		return err
	}

	hand.Status = HandStatusStood
	state.Message = fmt.Sprintf("You stand on hand %d.", handIndex+1)
	return g.endPlayerTurnIfDone(state)
}

// DoubleDown doubles the stake on the hand at handIndex, deals exactly one
// card, and ends the hand's turn
func (g *Game) DoubleDown(state *RoundState, handIndex int) error {
	hand, err := g.playingHand(state, handIndex)
	if err != nil {
		return err
	}

	if state.PlayerBalance < hand.BetAmount {
		state.Message = "insufficient funds"
		return nil
	}

	state.PlayerBalance -= hand.BetAmount
	hand.BetAmount *= 2

	card, err := state.Shoe.Draw()
	if err != nil {
		return err
	}

	hand.AddCard(card)

	if hand.Value() > 21 {
		hand.Status = HandStatusBusted
		state.Message = fmt.Sprintf("You doubled down and busted on hand %d!", handIndex+1)
	} else {
		hand.Status = HandStatusStood
		state.Message = fmt.Sprintf("You doubled down on hand %d.", handIndex+1)
	}

	return g.endPlayerTurnIfDone(state)
}

// Split turns a two-card pair into two independently staked hands. The second
// card seeds the new hand, both hands receive one fresh card, and the new
// hand is inserted directly after its parent. Split aces receive their single
// card and are forced to stand.
func (g *Game) Split(state *RoundState, handIndex int) error {
	hand, err := g.playingHand(state, handIndex)
	if err != nil {
		return err
	}

	if !hand.IsPair() {
		state.Message = "this hand cannot be split"
		return nil
	}

	if state.PlayerBalance < hand.BetAmount {
		state.Message = "insufficient funds"
		return nil
	}

	splitRank := hand.Cards.FirstCard().Rank

	state.PlayerBalance -= hand.BetAmount
	newHand := NewHand(hand.BetAmount)

	newHand.AddCard(hand.Cards.LastCard())
	hand.Cards = hand.Cards[0:1]

	for _, h := range []*Hand{hand, newHand} {
		card, err := state.Shoe.Draw()
		if err != nil {
			return err
		}

		h.AddCard(card)
	}

	hands := make([]*Hand, 0, len(state.PlayerHands)+1)
	hands = append(hands, state.PlayerHands[:handIndex+1]...)
	hands = append(hands, newHand)
	hands = append(hands, state.PlayerHands[handIndex+1:]...)
	state.PlayerHands = hands

	// split aces get exactly one card each and no further play
	if splitRank == deck.Ace {
		hand.Status = HandStatusStood
		newHand.Status = HandStatusStood
		state.Message = "Split aces each receive one card and stand."
		return g.endPlayerTurnIfDone(state)
	}

	state.Message = fmt.Sprintf("Hand split. Playing hand %d.", handIndex+1)
	state.AvailableActions = g.availableActions(state, handIndex)
	return nil
}

// playingHand returns the hand at handIndex if it is still in play
func (g *Game) playingHand(state *RoundState, handIndex int) (*Hand, error) {
	if handIndex < 0 || handIndex >= len(state.PlayerHands) {
		return nil, fmt.Errorf("hand index %d out of range: %w", handIndex, ErrHandNotPlaying)
	}

	hand := state.PlayerHands[handIndex]
	if hand.Status != HandStatusPlaying {
		return nil, fmt.Errorf("hand index %d has status %s: %w", handIndex, hand.Status, ErrHandNotPlaying)
	}

	return hand, nil
}

// checkInitialBlackjacks settles naturals right after the deal, or opens
// normal play on the first hand. The prefix (e.g. a reshuffle note) is kept
// in front of any resolution message.
func (g *Game) checkInitialBlackjacks(state *RoundState, prefix string) {
	playerBlackjack := state.PlayerHands[0].IsBlackjack()
	dealerBlackjack := state.DealerHand.IsBlackjack()

	if playerBlackjack || dealerBlackjack {
		g.resolveBlackjacks(state, prefix, playerBlackjack, dealerBlackjack)
		return
	}

	state.AvailableActions = g.availableActions(state, 0)
}

// resolveBlackjacks ends the round on a natural. A player-only natural pays
// 3:2, a dealer-only natural forfeits the stake, and both push.
func (g *Game) resolveBlackjacks(state *RoundState, prefix string, playerBlackjack, dealerBlackjack bool) {
	hand := state.PlayerHands[0]
	bet := hand.BetAmount

	switch {
	case playerBlackjack && !dealerBlackjack:
		hand.Status = HandStatusBlackjack
		state.Message = prefix + "Blackjack! You win 3:2."
		state.PlayerBalance += bet * 2.5
	case dealerBlackjack && !playerBlackjack:
		hand.Status = HandStatusStood
		state.Message = prefix + "Dealer has blackjack. You lose."
	default:
		hand.Status = HandStatusBlackjack
		state.Message = prefix + "Blackjack push."
		state.PlayerBalance += bet
	}

	g.endRound(state)
}

// endPlayerTurnIfDone makes the next playing hand active, or hands control to
// the dealer once every player hand is terminal
func (g *Game) endPlayerTurnIfDone(state *RoundState) error {
	for i, hand := range state.PlayerHands {
		if hand.Status == HandStatusPlaying {
			state.AvailableActions = g.availableActions(state, i)
			return nil
		}
	}

	return g.dealerTurn(state)
}

// dealerTurn draws until the dealer reaches the stand value, then settles
func (g *Game) dealerTurn(state *RoundState) error {
	for state.DealerHand.Value() < g.options.DealerStandValue {
		card, err := state.Shoe.Draw()
		if err != nil {
			return err
		}

		state.DealerHand.AddCard(card)
	}

	g.logger.WithFields(logrus.Fields{
		"dealerHand":  state.DealerHand.Cards.String(),
		"dealerValue": state.DealerHand.Value(),
	}).Debug("dealer turn complete")

	g.resolveBets(state)
	return nil
}

// resolveBets settles every player hand against the dealer and ends the round
func (g *Game) resolveBets(state *RoundState) {
	dealerValue := state.DealerHand.Value()

	var message strings.Builder
	message.WriteString("Result - ")

	for i, hand := range state.PlayerHands {
		if len(state.PlayerHands) > 1 {
			fmt.Fprintf(&message, "Hand %d: ", i+1)
		}

		playerValue := hand.Value()

		switch {
		case hand.Status == HandStatusBusted:
			// stake was forfeited when it busted
			message.WriteString("Busted. ")
		case dealerValue > 21 || playerValue > dealerValue:
			message.WriteString("Win! ")
			state.PlayerBalance += hand.BetAmount * 2
		case playerValue < dealerValue:
			message.WriteString("Lose. ")
		default:
			message.WriteString("Push. ")
			state.PlayerBalance += hand.BetAmount
		}
	}

	state.Message = strings.TrimSpace(message.String())
	g.endRound(state)
}

func (g *Game) endRound(state *RoundState) {
	state.RoundOver = true
	state.AvailableActions = []Action{ActionPlaceBet}
}

// availableActions computes the legal actions for the hand at handIndex.
// Pure function of the hand and the balance; no side effects.
func (g *Game) availableActions(state *RoundState, handIndex int) []Action {
	hand := state.PlayerHands[handIndex]
	actions := []Action{ActionHit, ActionStand}

	if len(hand.Cards) == 2 && state.PlayerBalance >= hand.BetAmount {
		actions = append(actions, ActionDoubleDown)

		if hand.IsPair() {
			actions = append(actions, ActionSplit)
		}
	}

	return actions
}
