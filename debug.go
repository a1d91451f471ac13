package willowxr

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set World debug flag so that node
// operations (which lack a World pointer) can check it cheaply. Only valid
// with a single World; multiple Worlds with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees print a warning, and dispatcher transitions and
// surface setup are logged to the debug output.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
}

// SetDebugOutput redirects debug logs. A nil writer restores os.Stderr.
func (w *World) SetDebugOutput(out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	w.debugOut = out
}

// debugLogf prints one prefixed line when debug mode is on.
func (w *World) debugLogf(format string, args ...any) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(w.debugOut, "[willowxr] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowxr debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[willowxr] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
