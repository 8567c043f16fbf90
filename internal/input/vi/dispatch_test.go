package vi

import (
	"testing"

	"github.com/dshills/viline/internal/edit"
)

// wantEdit asserts that instr carries the given edit command.
func wantEdit(t *testing.T, instr Instruction, cmd edit.Command) {
	t.Helper()
	if instr.Kind != InstrEdit {
		t.Fatalf("expected edit instruction, got %v", instr.Kind)
	}
	if instr.Edit != cmd {
		t.Errorf("expected %v, got %v", cmd, instr.Edit)
	}
}

// wantSignal asserts that instr carries the given signal.
func wantSignal(t *testing.T, instr Instruction, sig edit.Signal) {
	t.Helper()
	if instr.Kind != InstrSignal {
		t.Fatalf("expected signal instruction, got %v", instr.Kind)
	}
	if instr.Signal != sig {
		t.Errorf("expected %v, got %v", sig, instr.Signal)
	}
}

func TestDispatchStandalone(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want edit.Command
	}{
		{"append moves right", Command{Kind: CmdEnterViAppend}, edit.MoveRight(false)},
		{"paste after", Command{Kind: CmdPasteAfter}, edit.PasteCutBufferAfter},
		{"paste before", Command{Kind: CmdPasteBefore}, edit.PasteCutBufferBefore},
		{"undo", Command{Kind: CmdUndo}, edit.Undo},
		{"change to line end", Command{Kind: CmdChangeToLineEnd}, edit.ClearToLineEnd},
		{"delete to end", Command{Kind: CmdDeleteToEnd}, edit.CutToLineEnd},
		{"append to end", Command{Kind: CmdAppendToEnd}, edit.MoveToLineEnd(false)},
		{"prepend to start", Command{Kind: CmdPrependToStart}, edit.MoveToLineStart(false)},
		{"rewrite line", Command{Kind: CmdRewriteCurrentLine}, edit.CutCurrentLine},
		{"delete char", Command{Kind: CmdDeleteChar}, edit.CutChar},
		{"substitute", Command{Kind: CmdSubstituteCharWithInsert}, edit.CutChar},
		{"replace char", Command{Kind: CmdReplaceChar, Char: 'y'}, edit.ReplaceChar('y')},
		{"switch case", Command{Kind: CmdSwitchcase}, edit.SwitchcaseChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			instrs := tt.cmd.Dispatch(st)
			if len(instrs) != 1 {
				t.Fatalf("expected 1 instruction, got %d", len(instrs))
			}
			wantEdit(t, instrs[0], tt.want)
		})
	}
}

func TestDispatchStandaloneSignals(t *testing.T) {
	st := NewState()

	instrs := Command{Kind: CmdEnterViInsert}.Dispatch(st)
	if len(instrs) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(instrs))
	}
	wantSignal(t, instrs[0], edit.SignalRepaint)

	instrs = Command{Kind: CmdHistorySearch}.Dispatch(st)
	if len(instrs) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(instrs))
	}
	wantSignal(t, instrs[0], edit.SignalSearchHistory)
}

func TestDispatchIncompleteMarker(t *testing.T) {
	st := NewState()
	for _, kind := range []CommandKind{CmdDelete, CmdChange, CmdIncomplete} {
		instrs := Command{Kind: kind}.Dispatch(st)
		if len(instrs) != 1 || instrs[0].Kind != InstrIncomplete {
			t.Errorf("%v: expected the incomplete marker, got %v", kind, instrs)
		}
	}
}

func TestDispatchRepeatLastAction(t *testing.T) {
	st := NewState()
	cmd := Command{Kind: CmdRepeatLastAction}

	if instrs := cmd.Dispatch(st); len(instrs) != 0 {
		t.Fatalf("expected empty list without a previous action, got %v", instrs)
	}

	prev := edit.Event{Commands: []edit.Command{edit.CutToLineEnd}}
	st.RecordAction(prev)

	instrs := cmd.Dispatch(st)
	if len(instrs) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(instrs))
	}
	if instrs[0].Kind != InstrReplay {
		t.Fatalf("expected replay instruction, got %v", instrs[0].Kind)
	}
	if len(instrs[0].Replay.Commands) != 1 || instrs[0].Replay.Commands[0] != edit.CutToLineEnd {
		t.Errorf("replayed event does not match the recorded action: %v", instrs[0].Replay)
	}
}

func TestDeleteWithMotion(t *testing.T) {
	tests := []struct {
		name   string
		motion Motion
		want   edit.Command
	}{
		{"d$", Motion{Kind: MotionEnd}, edit.CutToLineEnd},
		{"dd", Motion{Kind: MotionLine}, edit.CutCurrentLine},
		{"dw", Motion{Kind: MotionNextWord}, edit.CutWordRightToNext},
		{"dW", Motion{Kind: MotionNextBigWord}, edit.CutBigWordRightToNext},
		{"de", Motion{Kind: MotionNextWordEnd}, edit.CutWordRight},
		{"dE", Motion{Kind: MotionNextBigWordEnd}, edit.CutBigWordRight},
		{"db", Motion{Kind: MotionPreviousWord}, edit.CutWordLeft},
		{"dB", Motion{Kind: MotionPreviousBigWord}, edit.CutBigWordLeft},
		{"d0", Motion{Kind: MotionStart}, edit.CutFromLineStart},
		{"dh", Motion{Kind: MotionLeft}, edit.Backspace},
		{"dl", Motion{Kind: MotionRight}, edit.Delete},
		{"dfx", Motion{Kind: MotionRightUntil, Char: 'x'}, edit.CutRightUntil('x')},
		{"dtx", Motion{Kind: MotionRightBefore, Char: 'x'}, edit.CutRightBefore('x')},
		{"dFx", Motion{Kind: MotionLeftUntil, Char: 'x'}, edit.CutLeftUntil('x')},
		{"dTx", Motion{Kind: MotionLeftBefore, Char: 'x'}, edit.CutLeftBefore('x')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			instrs, ok := Command{Kind: CmdDelete}.DispatchWithMotion(tt.motion, st)
			if !ok {
				t.Fatal("expected a supported combination")
			}
			if len(instrs) != 1 {
				t.Fatalf("expected 1 instruction, got %d", len(instrs))
			}
			wantEdit(t, instrs[0], tt.want)
		})
	}
}

func TestChangeWithMotion(t *testing.T) {
	tests := []struct {
		name string
		motion Motion
		want []edit.Command
	}{
		{"c$", Motion{Kind: MotionEnd}, []edit.Command{edit.ClearToLineEnd}},
		{"cc", Motion{Kind: MotionLine}, []edit.Command{edit.MoveToStart(false), edit.ClearToLineEnd}},
		{"cw", Motion{Kind: MotionNextWord}, []edit.Command{edit.CutWordRight}},
		{"cW", Motion{Kind: MotionNextBigWord}, []edit.Command{edit.CutBigWordRight}},
		{"ce collapses to cw", Motion{Kind: MotionNextWordEnd}, []edit.Command{edit.CutWordRight}},
		{"cE collapses to cW", Motion{Kind: MotionNextBigWordEnd}, []edit.Command{edit.CutBigWordRight}},
		{"cb", Motion{Kind: MotionPreviousWord}, []edit.Command{edit.CutWordLeft}},
		{"cB", Motion{Kind: MotionPreviousBigWord}, []edit.Command{edit.CutBigWordLeft}},
		{"c0", Motion{Kind: MotionStart}, []edit.Command{edit.CutFromLineStart}},
		{"ch", Motion{Kind: MotionLeft}, []edit.Command{edit.Backspace}},
		{"cl", Motion{Kind: MotionRight}, []edit.Command{edit.Delete}},
		{"cfx", Motion{Kind: MotionRightUntil, Char: 'x'}, []edit.Command{edit.CutRightUntil('x')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			instrs, ok := Command{Kind: CmdChange}.DispatchWithMotion(tt.motion, st)
			if !ok {
				t.Fatal("expected a supported combination")
			}
			// Every resolved change ends with a repaint.
			if len(instrs) != len(tt.want)+1 {
				t.Fatalf("expected %d instructions, got %d", len(tt.want)+1, len(instrs))
			}
			for i, cmd := range tt.want {
				wantEdit(t, instrs[i], cmd)
			}
			wantSignal(t, instrs[len(instrs)-1], edit.SignalRepaint)
		})
	}
}

func TestVerticalMotionsUnsupported(t *testing.T) {
	st := NewState()
	for _, kind := range []CommandKind{CmdDelete, CmdChange} {
		for _, motion := range []MotionKind{MotionUp, MotionDown} {
			_, ok := Command{Kind: kind}.DispatchWithMotion(Motion{Kind: motion}, st)
			if ok {
				t.Errorf("%v + %v: expected an unsupported combination", kind, motion)
			}
		}
	}
}

func TestNonOperatorWithMotionUnsupported(t *testing.T) {
	st := NewState()
	_, ok := Command{Kind: CmdUndo}.DispatchWithMotion(Motion{Kind: MotionEnd}, st)
	if ok {
		t.Fatal("expected an unsupported combination for a non-operator command")
	}
}

func TestCharSearchMemory(t *testing.T) {
	st := NewState()

	// A delete over a character search records the search.
	instrs, ok := Command{Kind: CmdDelete}.DispatchWithMotion(Motion{Kind: MotionRightUntil, Char: 'x'}, st)
	if !ok {
		t.Fatal("expected a supported combination")
	}
	wantEdit(t, instrs[0], edit.CutRightUntil('x'))

	if st.LastCharSearch == nil {
		t.Fatal("expected LastCharSearch to be recorded")
	}
	if st.LastCharSearch.Kind != SearchToRight || st.LastCharSearch.Char != 'x' {
		t.Fatalf("expected toRight('x'), got %v", st.LastCharSearch)
	}

	// Replay resolves to the identical cut.
	instrs, ok = Command{Kind: CmdDelete}.DispatchWithMotion(Motion{Kind: MotionReplayCharSearch}, st)
	if !ok {
		t.Fatal("expected replay to be supported")
	}
	wantEdit(t, instrs[0], edit.CutRightUntil('x'))

	// Reverse mirrors the direction, keeping the target.
	instrs, ok = Command{Kind: CmdDelete}.DispatchWithMotion(Motion{Kind: MotionReverseCharSearch}, st)
	if !ok {
		t.Fatal("expected reverse replay to be supported")
	}
	wantEdit(t, instrs[0], edit.CutLeftUntil('x'))

	// Replays never overwrite the memory.
	if st.LastCharSearch.Kind != SearchToRight || st.LastCharSearch.Char != 'x' {
		t.Errorf("replay must not change the remembered search, got %v", st.LastCharSearch)
	}
}

func TestCharSearchReplayWithoutMemory(t *testing.T) {
	st := NewState()
	for _, motion := range []MotionKind{MotionReplayCharSearch, MotionReverseCharSearch} {
		_, ok := Command{Kind: CmdDelete}.DispatchWithMotion(Motion{Kind: motion}, st)
		if ok {
			t.Errorf("%v: expected an unsupported combination without a remembered search", motion)
		}
	}
}

func TestCharSearchReverse(t *testing.T) {
	tests := []struct {
		in   CharSearchKind
		want CharSearchKind
	}{
		{SearchToRight, SearchToLeft},
		{SearchTillRight, SearchTillLeft},
		{SearchToLeft, SearchToRight},
		{SearchTillLeft, SearchTillRight},
	}

	for _, tt := range tests {
		got := CharSearch{Kind: tt.in, Char: 'q'}.Reverse()
		if got.Kind != tt.want || got.Char != 'q' {
			t.Errorf("%v.Reverse() = %v, want kind %v with same target", tt.in, got, tt.want)
		}
	}
}
