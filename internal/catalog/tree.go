// tree.go
//
// A reusable software component catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-catalog.
// jam-build-catalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-catalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-catalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package catalog

import "strings"

// TreeNode is one category path segment of the component tree.
type TreeNode struct {
	Label      string      `json:"label"`
	Components []Component `json:"-"`
	Children   Tree        `json:"children"`
}

// Child returns the direct child with the given label, or nil.
func (n *TreeNode) Child(label string) *TreeNode {
	return n.Children.Find(label)
}

// Tree is an ordered level of the component tree. Order is first-encounter order.
type Tree []*TreeNode

// Find returns the node with the given label at this level, or nil.
func (t Tree) Find(label string) *TreeNode {
	for _, n := range t {
		if n.Label == label {
			return n
		}
	}
	return nil
}

// Labels returns the node labels at this level in order.
func (t Tree) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, n := range t {
		labels = append(labels, n.Label)
	}
	return labels
}

// BuildTree folds components into a tree keyed by their [ParentCategory, Category] path.
// Nodes are identified by full path, so the same label under two parents yields two nodes.
func BuildTree(components []Component) Tree {
	var root Tree
	// path key -> node; keys join segments with a separator that cannot appear in a
	// category label typed into the catalog.
	index := make(map[string]*TreeNode)

	for _, component := range components {
		level := &root
		key := ""
		path := component.Path()

		for i, segment := range path {
			if i > 0 {
				key += "\x00"
			}
			key += segment

			node, ok := index[key]
			if !ok {
				node = &TreeNode{Label: segment}
				index[key] = node
				*level = append(*level, node)
			}

			if i == len(path)-1 {
				node.Components = append(node.Components, component)
			} else {
				level = &node.Children
			}
		}
	}

	return root
}

// Walk visits every node depth first, passing the node path.
// Returning false from fn stops descent into that node's children.
func (t Tree) Walk(fn func(path []string, node *TreeNode) bool) {
	t.walk(nil, fn)
}

func (t Tree) walk(prefix []string, fn func([]string, *TreeNode) bool) {
	for _, n := range t {
		path := append(append([]string(nil), prefix...), n.Label)
		if fn(path, n) {
			n.Children.walk(path, fn)
		}
	}
}

// PathString renders a tree path for display, e.g. "Storage / DB".
func PathString(path []string) string {
	return strings.Join(path, " / ")
}
