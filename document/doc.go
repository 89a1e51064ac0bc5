// Package document provides the minimal live SVG element tree the geometry
// core reads from.
//
// Only element structure and attributes are kept; character data, comments
// and processing instructions are dropped. The tree is mutable so that
// callers can attach transient helper nodes (see [Element.AppendChild] and
// [Element.Remove]) and detach them again.
//
// The transform chain collector lives here too: [CollectTransforms] walks an
// element's ancestors and returns their transform attributes root-first.
package document
