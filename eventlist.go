package asteroids

type EventType string

const (
	EventScore       EventType = "score"
	EventLifeLost    EventType = "life-lost"
	EventLevelUp     EventType = "level-up"
	EventGameOver    EventType = "game-over"
	EventStateChange EventType = "state-change"
)

type EventScoreData struct {
	Points uint32
	Total  uint32
}

type EventLifeLostData struct {
	Lives int
}

type EventLevelUpData struct {
	Level   Level
	Meteors int
}

type EventGameOverData struct {
	Score uint32
	Level Level
}

type EventStateChangeData struct {
	From, To StateType
}
