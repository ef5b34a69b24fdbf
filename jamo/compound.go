package jamo

// DecomposeCompound splits a compound jamo into its parts, one level deep.
// HCJ compounds decompose into HCJ, conjoining compounds into jamo of their
// own class. Non-compounds are returned as a single-element slice.
// Compounds without a known decomposition result in ErrNotImplemented.
func DecomposeCompound(r rune) ([]rune, error) {
	if !IsCompound(r) {
		return []rune{r}, nil
	}
	setupTables()
	if IsHCJ(r) {
		if parts, ok := hcjCompounds[r]; ok {
			return []rune(parts), nil
		}
		return nil, failure("DecomposeCompound", r, ErrNotImplemented)
	}
	class, err := ClassOf(r)
	if err != nil {
		return nil, failure("DecomposeCompound", r, ErrNotImplemented)
	}
	parts, ok := hcjCompounds[ToHCJ(r)]
	if !ok {
		return nil, failure("DecomposeCompound", r, ErrNotImplemented)
	}
	result := make([]rune, 0, 3)
	for _, p := range parts {
		j, err := FromHCJ(p, class)
		if err != nil {
			return nil, failure("DecomposeCompound", r, ErrNotImplemented)
		}
		result = append(result, j)
	}
	return result, nil
}

// ComposeCompound fuses two or three jamo into a compound jamo. If all parts
// are conjoining jamo of the same class, the result is of that class, if
// such a compound exists. Otherwise the result is an HCJ compound.
func ComposeCompound(parts ...rune) (rune, error) {
	if len(parts) < 2 || len(parts) > 3 {
		var r rune
		if len(parts) > 0 {
			r = parts[0]
		}
		return 0, failure("ComposeCompound", r, ErrInvalidCombination)
	}
	setupTables()
	key := make([]rune, len(parts))
	sameClass, class := true, Class(-1)
	for i, p := range parts {
		if !IsJamo(p) {
			return 0, failure("ComposeCompound", p, ErrInvalidCodePoint)
		}
		key[i] = ToHCJ(p)
		if IsHCJ(p) {
			sameClass = false
			continue
		}
		c, err := ClassOf(p)
		if err != nil || (class >= 0 && c != class) {
			sameClass = false
		}
		class = c
	}
	compound, ok := tables.compounds[string(key)]
	if !ok {
		if _, archaic := unsupportedCompounds[string(key)]; archaic {
			return 0, failure("ComposeCompound", parts[0], ErrNotImplemented)
		}
		return 0, failure("ComposeCompound", parts[0], ErrInvalidCombination)
	}
	if sameClass {
		if j, err := FromHCJ(compound, class); err == nil {
			return j, nil
		}
	}
	return compound, nil
}
