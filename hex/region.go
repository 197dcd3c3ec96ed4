package hex

// Ring returns the hexes at exact distance n from h, starting from the
// hex n steps away in direction 4 and walking each of the six sides in
// direction order. If n == 0, returns [h]; a negative n yields nil.
// The rotational order is stable and part of the contract.
func (h Hex) Ring(n int) []Hex {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []Hex{h}
	}
	out := make([]Hex, 0, 6*n)
	cur := h.Add(Directions[4].Scale(n))
	for side := 0; side < 6; side++ {
		for step := 0; step < n; step++ {
			out = append(out, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return out
}

// Range returns every hex within distance n of h, inclusive of h itself:
// 3n²+3n+1 hexes with no duplicates. A negative n yields nil.
func (h Hex) Range(n int) []Hex {
	if n < 0 {
		return nil
	}
	out := make([]Hex, 0, 3*n*n+3*n+1)
	for q := -n; q <= n; q++ {
		lo := max(-n, -q-n)
		hi := min(n, -q+n)
		for r := lo; r <= hi; r++ {
			out = append(out, h.Add(FromAxial(q, r)))
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
