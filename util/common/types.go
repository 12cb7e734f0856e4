package common

type Command int

const (
	Unknown Command = iota
	Start
	Stop
	Deploy
	Smoke
)
