package document

// Chain is an ordered list of raw transform attribute values, outermost
// ancestor first and the element itself last. Each entry encloses the
// coordinate spaces of all entries after it.
type Chain []string

// CollectTransforms walks from el up to the document root and returns the
// transform attributes found on the way, root-first. Elements without a
// transform attribute contribute nothing, so the chain is empty when no
// ancestor carries one. Values are passed through unvalidated.
//
// The chain is re-derived from the live tree on every call; nothing is
// cached.
func CollectTransforms(el *Element) Chain {
	var chain Chain
	for n := el; n != nil; n = n.parent {
		if v, ok := n.Attr("transform"); ok {
			chain = append(chain, v)
		}
	}
	// Collected leaf-first; reverse so the root comes first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// IsEmpty reports whether the chain holds no declarations.
func (c Chain) IsEmpty() bool {
	return len(c) == 0
}
