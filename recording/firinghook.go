package recording

import "github.com/Belfegnar/CrystalAI/scheduling"

// FiringTableName is the table the FiringHook writes into.
const FiringTableName = "command_firings"

// A Firing is one recorded command invocation.
type Firing struct {
	Stream        string
	CommandID     string
	Time          float64
	Gap           float64
	TimesExecuted uint64
}

// A FiringHook is a scheduling hook that records every fired command into a
// DataRecorder.
type FiringHook struct {
	recorder DataRecorder
}

// NewFiringHook creates a FiringHook and its backing table. Attach it to the
// streams whose firings should be traced.
func NewFiringHook(recorder DataRecorder) *FiringHook {
	h := &FiringHook{recorder: recorder}
	h.recorder.CreateTable(FiringTableName, Firing{})
	return h
}

// Func records AfterCommand sites.
func (h *FiringHook) Func(ctx scheduling.HookCtx) {
	if ctx.Pos != scheduling.HookPosAfterCommand {
		return
	}

	info, ok := ctx.Item.(scheduling.CommandInfo)
	if !ok {
		return
	}

	h.recorder.InsertData(FiringTableName, Firing{
		Stream:        info.Stream,
		CommandID:     info.CommandID,
		Time:          float64(info.Time),
		Gap:           float64(info.LastGap),
		TimesExecuted: info.TimesExecuted,
	})
}
