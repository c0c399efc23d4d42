package types

import (
	"supersnake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStart
	UIEventSteer
	UIEventRestart
	UIEventQuit
	UIEventShowMenu
)

type SteerData struct {
	Input domain.Input
}
