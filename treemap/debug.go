package treemap

import (
	"fmt"

	"github.com/ibsatassew/ContactsApp/bintree"
	"github.com/xlab/treeprint"
)

// Renders the slot structure of the tree, including external sentinel slots, for debugging.
func (m *Map[K, V]) DebugTree() string {
	m.init()
	root := m.tree.Root()
	tree := treeprint.NewWithRoot(m.debugLabel(root))
	m.debugWalk(root, tree)
	return tree.String()
}

func (m *Map[K, V]) debugWalk(p bintree.Position, branch treeprint.Tree) {
	for _, c := range []bintree.Position{m.tree.Left(p), m.tree.Right(p)} {
		if c == bintree.NoPosition {
			continue
		}
		if m.tree.IsExternal(c) {
			branch.AddNode(m.debugLabel(c))
			continue
		}
		m.debugWalk(c, branch.AddBranch(m.debugLabel(c)))
	}
}

func (m *Map[K, V]) debugLabel(p bintree.Position) string {
	e := m.entry(p)
	if e == nil {
		return "─◌"
	}
	return fmt.Sprintf("%v ─◉", e.key)
}
