package game

import (
	"context"

	"github.com/google/uuid"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/minigames"
	gamelog "pokecasino/server/logging/games"
)

// rocketRound is an open crash round. The crash point is drawn at stake
// time and kept server-side; the client only learns it when the round
// ends.
type rocketRound struct {
	wager      float64
	bonus      float64
	crashPoint float64
}

// stake validates and deducts a wager under the lock, returning the bonus
// multiplier for the game. The wager leaves the balance before the outcome
// exists; payouts are credited separately.
func (e *Engine) stake(ctx context.Context, game string, wager float64, bonusCategory catalog.BonusCategory) (float64, error) {
	if wager <= 0 {
		return 0, deny(ReasonInvalidWager, game)
	}
	if e.player.Credits < wager {
		gamelog.WagerDenied(ctx, e.publisher, e.nextSeq(), e.playerRef(),
			gamelog.DeniedPayload{Game: game, Wager: wager, Reason: string(ReasonInsufficientFunds)}, nil)
		return 0, deny(ReasonInsufficientFunds, game)
	}
	bonus := e.player.BonusMultiplier(bonusCategory)
	e.creditDelta(ctx, -wager)
	gamelog.WagerPlaced(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		gamelog.WagerPayload{Game: game, Wager: wager, Bonus: bonus, Balance: e.player.Credits}, nil)
	return bonus, nil
}

// PlayRoulette stakes a wager on a color and spins immediately.
func (e *Engine) PlayRoulette(ctx context.Context, wager float64, pick minigames.RouletteColor) (minigames.RouletteResult, error) {
	e.mu.Lock()
	bonus, err := e.stake(ctx, "roulette", wager, catalog.BonusRoulette)
	if err != nil {
		e.mu.Unlock()
		return minigames.RouletteResult{}, err
	}

	result := minigames.SpinRoulette(e.rng, wager, pick, bonus)
	if result.Payout > 0 {
		e.player.Stats.RouletteWins++
		e.creditDelta(ctx, result.Payout)
	}
	balance := e.player.Credits
	e.finish(ctx)

	gamelog.WagerSettled(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		gamelog.SettlePayload{Game: "roulette", Wager: wager, Payout: result.Payout, Balance: balance}, nil)
	return result, nil
}

// PlaySlots stakes a wager and draws a full grid.
func (e *Engine) PlaySlots(ctx context.Context, wager float64) (minigames.SlotResult, error) {
	e.mu.Lock()
	bonus, err := e.stake(ctx, "slots", wager, catalog.BonusSlots)
	if err != nil {
		e.mu.Unlock()
		return minigames.SlotResult{}, err
	}

	result := minigames.SpinSlots(e.rng, wager, bonus)
	if result.Payout > 0 {
		e.player.Stats.SlotsWins++
		e.creditDelta(ctx, result.Payout)
	}
	balance := e.player.Credits
	e.finish(ctx)

	gamelog.WagerSettled(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		gamelog.SettlePayload{Game: "slots", Wager: wager, Payout: result.Payout, Balance: balance}, nil)
	return result, nil
}

// StartRocket stakes a wager and opens a crash round. The returned id
// redeems the round via CashOutRocket; the crash threshold stays hidden.
func (e *Engine) StartRocket(ctx context.Context, wager float64) (string, error) {
	e.mu.Lock()
	bonus, err := e.stake(ctx, "rocket", wager, catalog.BonusRocket)
	if err != nil {
		e.mu.Unlock()
		return "", err
	}

	roundID := uuid.NewString()
	e.rounds[roundID] = &rocketRound{
		wager:      wager,
		bonus:      bonus,
		crashPoint: minigames.RocketCrashPoint(e.rng),
	}
	e.player.Stats.RocketBets++
	e.settleAchievements(ctx)
	e.finish(ctx)
	return roundID, nil
}

// CashOutRocket settles an open round at the multiplier reached after
// elapsed seconds. Cashing out at or past the crash point loses the wager;
// either way the round is closed.
func (e *Engine) CashOutRocket(ctx context.Context, roundID string, elapsed float64) (float64, bool, error) {
	e.mu.Lock()
	round, ok := e.rounds[roundID]
	if !ok {
		e.mu.Unlock()
		return 0, false, deny(ReasonNotFound, roundID)
	}
	delete(e.rounds, roundID)

	multiplier := minigames.RocketMultiplierAt(elapsed)
	if multiplier >= round.crashPoint {
		balance := e.player.Credits
		e.finish(ctx)
		gamelog.WagerSettled(ctx, e.publisher, e.nextSeq(), e.playerRef(),
			gamelog.SettlePayload{Game: "rocket", Wager: round.wager, Payout: 0, Balance: balance}, nil)
		return round.crashPoint, false, nil
	}

	payout := minigames.RocketPayout(round.wager, multiplier, round.bonus)
	e.creditDelta(ctx, payout)
	balance := e.player.Credits
	e.finish(ctx)

	gamelog.WagerSettled(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		gamelog.SettlePayload{Game: "rocket", Wager: round.wager, Payout: payout, Balance: balance}, nil)
	return multiplier, true, nil
}

// AbandonRocket closes an open round without settlement; the wager is
// forfeit. Used when a session drops mid-round.
func (e *Engine) AbandonRocket(roundID string) {
	e.mu.Lock()
	delete(e.rounds, roundID)
	e.mu.Unlock()
}
