package errors

import (
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

// CaptureStack returns the call stack of its caller's caller, one
// "function\n\tfile:line" entry per frame. When called while a panic is
// unwinding, frames up to the panic are dropped so the trace starts at the
// code that panicked. Frames of package runtime are omitted.
func CaptureStack() string {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var frames []runtime.Frame
	iter := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := iter.Next()
		if frame.Function == "runtime.gopanic" {
			frames = frames[:0]
		} else if !strings.HasPrefix(frame.Function, "runtime.") {
			frames = append(frames, frame)
		}
		if !more {
			break
		}
	}

	var sb strings.Builder
	for _, f := range frames {
		sb.WriteString(f.Function)
		sb.WriteString("\n\t")
		sb.WriteString(f.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(f.Line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
