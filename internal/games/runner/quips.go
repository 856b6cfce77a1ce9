package runner

// Death quips shown while the run winds down. Lookup falls back from the
// obstacle and character pair to the obstacle alone, then to fallbackQuip.

const fallbackQuip = "Even the fastest campaign ends somewhere."

var genericQuips = map[ObstacleType]string{
	ObstacleReporter:  "Caught by a reporter with one more question.",
	ObstacleSubpoena:  "Served. Nobody outruns paperwork.",
	ObstacleCBIAgent:  "Stopped by an agent who finally read the file.",
	ObstacleFlyingMic: "Silenced by a stray microphone.",
	ObstacleChair:     "Furniture 1, politician 0.",
	ObstacleNewsVan:   "Run over by the news cycle.",
	ObstacleBallotBox: "The ballot box always gets a say.",
	ObstacleTaxNotice: "The tax notice arrived on time. You did not.",
}

var characterQuips = map[ObstacleType]map[CharacterID]string{
	ObstacleReporter: {
		CharModi:  "A press conference broke out. The shield was at home.",
		CharTrump: "\"Fake news!\" The reporter kept asking anyway.",
		CharBiden: "\"Come on, man, I was going fifteen.\"",
	},
	ObstacleSubpoena: {
		CharKejriwal: "Another summons. He has a drawer for these.",
		CharTrump:    "\"This subpoena is rigged!\" It was delivered anyway.",
	},
	ObstacleCBIAgent: {
		CharKejriwal: "Tackled by the agency he spent years talking about.",
		CharPutin:    "The agent will not be making that mistake twice.",
	},
	ObstacleFlyingMic: {
		CharRahul: "The mic asked a follow-up question. Crash.",
		CharModi:  "Cut off mid-monologue by a microphone.",
	},
	ObstacleChair: {
		CharBiden: "\"I've seen this chair before. Delaware, 1987.\"",
	},
	ObstacleNewsVan: {
		CharTrump: "Enemy of the people, 1. Runner, 0.",
		CharPutin: "The driver has been reassigned. Effective immediately.",
	},
	ObstacleBallotBox: {
		CharRahul: "Tripped over the ballot box. Tradition maintained.",
		CharPutin: "The box reported 146% turnout. Still in the way.",
	},
	ObstacleTaxNotice: {
		CharTrump: "\"I pay the most taxes. Tremendous taxes.\" Caught anyway.",
	},
}

// Quip returns the death line for an obstacle and character.
func Quip(obstacle ObstacleType, character CharacterID) string {
	if byChar, ok := characterQuips[obstacle]; ok {
		if q, ok := byChar[character]; ok {
			return q
		}
	}
	if q, ok := genericQuips[obstacle]; ok {
		return q
	}
	return fallbackQuip
}
