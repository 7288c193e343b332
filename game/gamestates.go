package game

// Phase represents the main stages of a round
type Phase int

const (
	Setup Phase = iota
	Swapping
	Playing
	GameOver
)

var phaseNames = map[Phase]string{
	Setup:    "setup",
	Swapping: "swapping",
	Playing:  "playing",
	GameOver: "gameOver",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Side is one of the two players at the table
type Side int

const (
	Human Side = iota
	Computer
)

func (s Side) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Human {
		return Computer
	}
	return Human
}

// Source is the zone a side plays cards from
type Source int

const (
	Hand Source = iota
	FaceUp
	FaceDown
)

var sourceNames = map[Source]string{
	Hand:     "hand",
	FaceUp:   "face-up",
	FaceDown: "face-down",
}

func (s Source) String() string {
	return sourceNames[s]
}

// Outcome records how a round ended
type Outcome int

const (
	NoOutcome Outcome = iota
	RoundWon
	MatchWon
	MatchLost
)

var outcomeNames = map[Outcome]string{
	NoOutcome: "",
	RoundWon:  "roundWon",
	MatchWon:  "matchWon",
	MatchLost: "matchLost",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}
