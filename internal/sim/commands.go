package sim

import "time"

type CommandType string

const (
	CmdStart   CommandType = "start"
	CmdReset   CommandType = "reset"
	CmdTrigger CommandType = "trigger"
)

type Command interface {
	Type() CommandType
	ReceivedAt() time.Time
}

// StartCommand launches from Ready.
type StartCommand struct{ At time.Time }

func (c StartCommand) Type() CommandType     { return CmdStart }
func (c StartCommand) ReceivedAt() time.Time { return c.At }

// ResetCommand returns to Ready from any phase.
type ResetCommand struct{ At time.Time }

func (c ResetCommand) Type() CommandType     { return CmdReset }
func (c ResetCommand) ReceivedAt() time.Time { return c.At }

// TriggerCommand is the one-key control: start when Ready, re-arm when Landed.
type TriggerCommand struct{ At time.Time }

func (c TriggerCommand) Type() CommandType     { return CmdTrigger }
func (c TriggerCommand) ReceivedAt() time.Time { return c.At }
