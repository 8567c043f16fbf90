package vi

import "github.com/dshills/viline/internal/edit"

// Dispatch returns the instruction sequence for a command that resolves on
// its own. Commands that require a motion (delete, change) and the
// Incomplete sentinel yield the incomplete marker. The session state is
// only read here, never written.
func (c Command) Dispatch(st *State) []Instruction {
	switch c.Kind {
	case CmdEnterViInsert:
		return []Instruction{SignalInstr(edit.SignalRepaint)}
	case CmdEnterViAppend:
		return []Instruction{EditInstr(edit.MoveRight(false))}
	case CmdPasteAfter:
		return []Instruction{EditInstr(edit.PasteCutBufferAfter)}
	case CmdPasteBefore:
		return []Instruction{EditInstr(edit.PasteCutBufferBefore)}
	case CmdUndo:
		return []Instruction{EditInstr(edit.Undo)}
	case CmdChangeToLineEnd:
		return []Instruction{EditInstr(edit.ClearToLineEnd)}
	case CmdDeleteToEnd:
		return []Instruction{EditInstr(edit.CutToLineEnd)}
	case CmdAppendToEnd:
		return []Instruction{EditInstr(edit.MoveToLineEnd(false))}
	case CmdPrependToStart:
		return []Instruction{EditInstr(edit.MoveToLineStart(false))}
	case CmdRewriteCurrentLine:
		return []Instruction{EditInstr(edit.CutCurrentLine)}
	case CmdDeleteChar, CmdSubstituteCharWithInsert:
		return []Instruction{EditInstr(edit.CutChar)}
	case CmdReplaceChar:
		return []Instruction{EditInstr(edit.ReplaceChar(c.Char))}
	case CmdHistorySearch:
		return []Instruction{SignalInstr(edit.SignalSearchHistory)}
	case CmdSwitchcase:
		return []Instruction{EditInstr(edit.SwitchcaseChar)}
	case CmdRepeatLastAction:
		if st.Previous == nil {
			return nil
		}
		return []Instruction{ReplayInstr(*st.Previous)}
	default:
		// Delete, change and the sentinel need a motion to finish.
		return []Instruction{Incomplete}
	}
}

// DispatchWithMotion returns the instruction sequence for delete or change
// combined with a motion. ok is false for combinations that define no
// behavior: any command other than delete/change, vertical motions, and
// char-search replays with no remembered search. Such combinations are a
// contract violation upstream and must be treated as a no-op.
//
// Character-search motions additionally overwrite st.LastCharSearch so a
// later ";" or "," can replay them.
func (c Command) DispatchWithMotion(m Motion, st *State) (instrs []Instruction, ok bool) {
	switch c.Kind {
	case CmdDelete:
		return c.deleteWithMotion(m, st)
	case CmdChange:
		return c.changeWithMotion(m, st)
	default:
		return nil, false
	}
}

func (c Command) deleteWithMotion(m Motion, st *State) ([]Instruction, bool) {
	var cmd edit.Command

	switch m.Kind {
	case MotionEnd:
		cmd = edit.CutToLineEnd
	case MotionLine:
		cmd = edit.CutCurrentLine
	case MotionNextWord:
		cmd = edit.CutWordRightToNext
	case MotionNextBigWord:
		cmd = edit.CutBigWordRightToNext
	case MotionNextWordEnd:
		cmd = edit.CutWordRight
	case MotionNextBigWordEnd:
		cmd = edit.CutBigWordRight
	case MotionPreviousWord:
		cmd = edit.CutWordLeft
	case MotionPreviousBigWord:
		cmd = edit.CutBigWordLeft
	case MotionStart:
		cmd = edit.CutFromLineStart
	case MotionLeft:
		cmd = edit.Backspace
	case MotionRight:
		cmd = edit.Delete
	case MotionUp, MotionDown:
		// Multi-line delete is unsupported.
		return nil, false
	case MotionReplayCharSearch:
		if st.LastCharSearch == nil {
			return nil, false
		}
		cmd = st.LastCharSearch.ToCut()
	case MotionReverseCharSearch:
		if st.LastCharSearch == nil {
			return nil, false
		}
		cmd = st.LastCharSearch.Reverse().ToCut()
	default:
		var ok bool
		cmd, ok = rememberCharSearch(m, st)
		if !ok {
			return nil, false
		}
	}

	return []Instruction{EditInstr(cmd)}, true
}

func (c Command) changeWithMotion(m Motion, st *State) ([]Instruction, bool) {
	var instrs []Instruction

	switch m.Kind {
	case MotionEnd:
		instrs = []Instruction{EditInstr(edit.ClearToLineEnd)}
	case MotionLine:
		instrs = []Instruction{
			EditInstr(edit.MoveToStart(false)),
			EditInstr(edit.ClearToLineEnd),
		}
	case MotionNextWord:
		instrs = []Instruction{EditInstr(edit.CutWordRight)}
	case MotionNextBigWord:
		instrs = []Instruction{EditInstr(edit.CutBigWordRight)}
	case MotionNextWordEnd:
		// Changing to a word end collapses to changing the word itself.
		instrs = []Instruction{EditInstr(edit.CutWordRight)}
	case MotionNextBigWordEnd:
		instrs = []Instruction{EditInstr(edit.CutBigWordRight)}
	case MotionPreviousWord:
		instrs = []Instruction{EditInstr(edit.CutWordLeft)}
	case MotionPreviousBigWord:
		instrs = []Instruction{EditInstr(edit.CutBigWordLeft)}
	case MotionStart:
		instrs = []Instruction{EditInstr(edit.CutFromLineStart)}
	case MotionLeft:
		instrs = []Instruction{EditInstr(edit.Backspace)}
	case MotionRight:
		instrs = []Instruction{EditInstr(edit.Delete)}
	case MotionUp, MotionDown:
		// Multi-line change is unsupported.
		return nil, false
	case MotionReplayCharSearch:
		if st.LastCharSearch == nil {
			return nil, false
		}
		instrs = []Instruction{EditInstr(st.LastCharSearch.ToCut())}
	case MotionReverseCharSearch:
		if st.LastCharSearch == nil {
			return nil, false
		}
		instrs = []Instruction{EditInstr(st.LastCharSearch.Reverse().ToCut())}
	default:
		cmd, ok := rememberCharSearch(m, st)
		if !ok {
			return nil, false
		}
		instrs = []Instruction{EditInstr(cmd)}
	}

	// Change enters insert mode; the mode transition must be made visible
	// immediately, so every resolved change ends with a repaint.
	instrs = append(instrs, SignalInstr(edit.SignalRepaint))
	return instrs, true
}

// rememberCharSearch resolves a character-search motion to its cut command
// and records it in the session state.
func rememberCharSearch(m Motion, st *State) (edit.Command, bool) {
	var search CharSearch

	switch m.Kind {
	case MotionRightUntil:
		search = CharSearch{Kind: SearchToRight, Char: m.Char}
	case MotionRightBefore:
		search = CharSearch{Kind: SearchTillRight, Char: m.Char}
	case MotionLeftUntil:
		search = CharSearch{Kind: SearchToLeft, Char: m.Char}
	case MotionLeftBefore:
		search = CharSearch{Kind: SearchTillLeft, Char: m.Char}
	default:
		return edit.Command{}, false
	}

	st.LastCharSearch = &search
	return search.ToCut(), true
}
