package app

import "supersnake/internal/domain"

type EventType int

const (
	EventNone EventType = iota
	EventStarted
	EventTicked
	EventPointCollected
	EventGameOver
	EventBoardFull
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventTicked:
		return "ticked"
	case EventPointCollected:
		return "point collected"
	case EventGameOver:
		return "game over"
	case EventBoardFull:
		return "board full"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Payload interface{}
}

type ScorePayload struct {
	Points int
	Pace   int
}

// Ends reports whether the event closes the round.
func (e Event) Ends() bool {
	return e.Type == EventGameOver || e.Type == EventBoardFull
}

func scoreEvent(t EventType, res domain.TickResult) Event {
	return Event{Type: t, Payload: ScorePayload{Points: res.Points, Pace: res.Pace}}
}
