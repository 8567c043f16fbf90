package vi

// Interpret parses one full normal-mode command from the pending keystroke
// buffer and dispatches it against the session state. It combines the
// command parser, line-wise doubling detection (dd, cc) and the motion
// parser.
//
// StatusNoMatch means the buffer starts with something that is not a
// command here; the caller falls back to another grammar rule (bare
// motion movement, insert passthrough) with nothing consumed from its
// buffer. StatusPending means a valid prefix is waiting for more
// keystrokes. StatusComplete means the returned instructions are ready for
// the executor; an empty complete result is a no-op (an unsupported
// combination, swallowed rather than surfaced).
func Interpret(in *Input, st *State) ([]Instruction, Status) {
	cmd, status := ParseCommand(in)
	if status != StatusComplete {
		return nil, status
	}

	if !cmd.RequiresMotion() {
		return cmd.Dispatch(st), StatusComplete
	}

	next, ok := in.Peek()
	if !ok {
		return nil, StatusPending
	}

	var motion Motion
	if trigger, hasTrigger := cmd.WholeLineChar(); hasTrigger && next == trigger {
		in.Next()
		motion = Motion{Kind: MotionLine}
	} else {
		var mstatus Status
		motion, mstatus = ParseMotion(in)
		switch mstatus {
		case StatusPending:
			return nil, StatusPending
		case StatusNoMatch:
			// Operator followed by a non-motion: the sequence resolves
			// to nothing. Consume the offending key so the caller can
			// discard the buffer.
			in.Next()
			return nil, StatusComplete
		}
	}

	instrs, supported := cmd.DispatchWithMotion(motion, st)
	if !supported {
		return nil, StatusComplete
	}
	return instrs, StatusComplete
}
