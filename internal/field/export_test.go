package field

// SetNodes replaces the population with hand-placed nodes.
func (f *Field) SetNodes(nodes []Node) { f.nodes = nodes }
