package vi

import (
	"fmt"

	"github.com/dshills/viline/internal/edit"
)

// InstructionKind identifies what an instruction carries.
type InstructionKind uint8

const (
	// InstrEdit carries a buffer-mutation command.
	InstrEdit InstructionKind = iota

	// InstrSignal carries a UI signal.
	InstrSignal

	// InstrReplay carries a previously resolved action to re-execute.
	InstrReplay

	// InstrIncomplete marks a command that still needs a motion.
	InstrIncomplete
)

// String returns the instruction kind name.
func (k InstructionKind) String() string {
	switch k {
	case InstrEdit:
		return "edit"
	case InstrSignal:
		return "signal"
	case InstrReplay:
		return "replay"
	case InstrIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("InstructionKind(%d)", k)
	}
}

// Instruction is one element of a dispatch result: an edit command, a UI
// signal, a replayed action, or the incomplete marker.
type Instruction struct {
	// Kind identifies which field below is meaningful.
	Kind InstructionKind

	// Edit is the buffer command for InstrEdit.
	Edit edit.Command

	// Signal is the UI signal for InstrSignal.
	Signal edit.Signal

	// Replay is the action to re-execute for InstrReplay.
	Replay edit.Event
}

// String returns a human-readable representation of the instruction.
func (i Instruction) String() string {
	switch i.Kind {
	case InstrEdit:
		return i.Edit.String()
	case InstrSignal:
		return i.Signal.String()
	case InstrReplay:
		return "replay" + i.Replay.String()
	default:
		return i.Kind.String()
	}
}

// EditInstr wraps an edit command as an instruction.
func EditInstr(cmd edit.Command) Instruction {
	return Instruction{Kind: InstrEdit, Edit: cmd}
}

// SignalInstr wraps a UI signal as an instruction.
func SignalInstr(sig edit.Signal) Instruction {
	return Instruction{Kind: InstrSignal, Signal: sig}
}

// ReplayInstr wraps a previously resolved action as an instruction.
func ReplayInstr(ev edit.Event) Instruction {
	return Instruction{Kind: InstrReplay, Replay: ev.Clone()}
}

// Incomplete is the marker instruction for commands awaiting a motion.
var Incomplete = Instruction{Kind: InstrIncomplete}
