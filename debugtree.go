package pulse

import (
	"log/slog"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/AnatoleLucet/pulse/internal"
)

// GraphString renders the ownership tree under o, with each computation's
// name and propagation state. Children print most recently created first,
// matching disposal order.
func GraphString(o *Owner) string {
	return buildTree(o.owner).String()
}

func buildTree(o *internal.Owner) *tree.Tree {
	t := tree.NewTree(tree.NodeString(ownerLabel(o)))
	addChildren(t, o)
	return t
}

func addChildren(t *tree.Tree, o *internal.Owner) {
	for child := range o.Children() {
		sub := t.AddChild(tree.NodeString(ownerLabel(child)))
		addChildren(sub, child)
	}
}

func ownerLabel(o *internal.Owner) string {
	if node := o.Node(); node != nil {
		return node.Name() + " (" + node.State().String() + ")"
	}

	if o.Disposed() {
		return "owner (disposed)"
	}

	return "owner"
}

// LogGraph writes the rendered ownership tree through logger at debug level.
// A nil logger falls back to slog's default.
func LogGraph(logger *slog.Logger, o *Owner) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("pulse: ownership graph", "graph", "\n"+GraphString(o))
}

// SetLogger overrides the logger used for engine diagnostics (first-run
// failures, graph dumps). Nil restores the default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
