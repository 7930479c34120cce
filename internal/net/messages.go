package net

// clientMessage is the single envelope every client command arrives in.
// Fields beyond Type and Seq are command-specific; unused ones stay zero.
type clientMessage struct {
	Type    string         `json:"type"`
	Seq     uint64         `json:"seq,omitempty"`
	UID     string         `json:"uid,omitempty"`
	Partner string         `json:"partner,omitempty"`
	Target  int            `json:"target,omitempty"`
	Item    string         `json:"item,omitempty"`
	Starter string         `json:"starter,omitempty"`
	Wager   float64        `json:"wager,omitempty"`
	Pick    string         `json:"pick,omitempty"`
	Round   string         `json:"round,omitempty"`
	Elapsed float64        `json:"elapsed,omitempty"`
	Filter  *filterPayload `json:"filter,omitempty"`
}

// filterPayload mirrors the market filter over the wire. Zero values mean
// "any".
type filterPayload struct {
	Class      string   `json:"class,omitempty"`
	Bonus      string   `json:"bonus,omitempty"`
	Generation int      `json:"generation,omitempty"`
	Types      []string `json:"types,omitempty"`
	Group      string   `json:"group,omitempty"`
}

type ackMessage struct {
	Type   string `json:"type"`
	Seq    uint64 `json:"seq"`
	Cmd    string `json:"cmd"`
	Result any    `json:"result,omitempty"`
}

type rejectMessage struct {
	Type    string `json:"type"`
	Seq     uint64 `json:"seq"`
	Cmd     string `json:"cmd"`
	Reason  string `json:"reason"`
	Subject string `json:"subject,omitempty"`
}

type rocketStakeResult struct {
	Round string `json:"round"`
}

type rocketCashOutResult struct {
	Multiplier float64 `json:"multiplier"`
	Won        bool    `json:"won"`
}

type sellResult struct {
	Proceeds float64 `json:"proceeds"`
}

type equipResult struct {
	Equipped bool `json:"equipped"`
}

type takeItemResult struct {
	Item string `json:"item"`
}
