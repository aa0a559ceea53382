package category

// Tree nests categories under their parents. Categories whose parent is not
// in the list become roots, as does the first member of a parent cycle met
// in input order. Sibling order follows the input.
func Tree(flat []Category) []Category {
	present := make(map[int64]bool, len(flat))
	for _, c := range flat {
		present[c.ID] = true
	}

	byParent := make(map[int64][]Category)
	var roots []Category
	for _, c := range flat {
		c.Children = nil
		if c.ParentID == RootParentID || !present[c.ParentID] || c.ParentID == c.ID {
			roots = append(roots, c)
			continue
		}
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}

	seen := make(map[int64]bool, len(flat))
	var attach func(nodes []Category) []Category
	attach = func(nodes []Category) []Category {
		out := nodes[:0]
		for _, n := range nodes {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			if kids := byParent[n.ID]; len(kids) > 0 {
				n.Children = attach(append([]Category(nil), kids...))
			}
			out = append(out, n)
		}
		return out
	}
	roots = attach(roots)

	// Nodes caught in a parent cycle are unreachable from any root.
	for _, c := range flat {
		if !seen[c.ID] {
			c.Children = nil
			roots = append(roots, attach([]Category{c})...)
		}
	}
	return roots
}
