package rewardservice

import (
	"errors"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

const (
	EngagementCoins = 10
	ReelViewCoins   = 20

	ReasonSelfAction = "self_action"
)

var (
	ErrUnknownKind   = errors.New("unknown reward kind")
	ErrInvalidAmount = errors.New("reward amount must be positive")
)

// Decision is what settling an action means for the ledger.
// Minted rewards credit the actor only; the rest move coins from owner to actor.
type Decision struct {
	Amount int64
	Minted bool
	Skip   bool
	Reason string
}

// Decide maps an action onto its reward without touching any storage.
func Decide(a domain.RewardAction) (Decision, error) {
	var d Decision
	switch a.Kind {
	case domain.TxLike, domain.TxComment, domain.TxReply, domain.TxSave:
		d.Amount = EngagementCoins
	case domain.TxReelViewReward:
		d.Amount = ReelViewCoins
		d.Minted = true
	case domain.TxAdReward:
		if a.Amount <= 0 {
			return Decision{}, ErrInvalidAmount
		}
		d.Amount = a.Amount
		d.Minted = true
	default:
		return Decision{}, ErrUnknownKind
	}

	if a.ActorID == a.OwnerID {
		return Decision{Skip: true, Reason: ReasonSelfAction}, nil
	}
	return d, nil
}
