package mdtree

import "errors"

// SkipChildren can be returned by a VisitFunc to keep Walk from descending
// into the node now at parent.Children[index].
var SkipChildren = errors.New("skip children")

// VisitFunc is called with the parent of the visited node and the node's
// index in parent.Children. It may replace parent.Children[index]; Walk then
// descends into whatever node occupies that slot. Splicing the children list
// is allowed as long as parent.Children[index] still exists afterwards.
type VisitFunc func(parent *Node, index int) error

// Walk visits every descendant of root in document order. Any error other
// than one wrapping SkipChildren stops the traversal and is returned.
func Walk(root *Node, fn VisitFunc) error {
	if root == nil {
		return nil
	}
	for i := 0; i < len(root.Children); i++ {
		err := fn(root, i)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if i >= len(root.Children) {
			break
		}
		if err := Walk(root.Children[i], fn); err != nil {
			return err
		}
	}
	return nil
}
