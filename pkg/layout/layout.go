// Package layout splits rectangular terminal areas into sub-regions
// according to declarative constraints, in the manner of ratatui's layout
// system. The kiosk grid and its compact variant are both expressed as
// nested vertical and horizontal splits.
//
// Constraint types:
//   - Length(n): fixed size in cells
//   - Percentage(p): percentage of the available space (0-100)
//   - Min(n): at least n cells, grows to absorb surplus
//   - Fill(w): fills remaining space proportional to weight
package layout

// Rect is a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (px, py) lies within the rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Direction selects the axis a split divides.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint is satisfied by the sealed constraint types below.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Percentage allocates Value percent of the total space (0-100).
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Min allocates at least Value cells and shares any surplus equally with
// other Min items.
type Min struct{ Value int }

func (Min) constraint() {}

// Fill distributes remaining space proportional to Weight; 0 counts as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Split divides area along dir into one Rect per constraint, in order.
// Fixed allocations (Length, Percentage) are taken first, then the
// remainder is distributed over Min and Fill items. Sizes never go
// negative; when the area is too small the trailing regions collapse to
// zero.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	total := area.Width
	if dir == Vertical {
		total = area.Height
	}

	sizes := solve(total, constraints)

	out := make([]Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			out[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			out[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return out
}

// solve computes the size of each constraint along a single axis.
func solve(total int, constraints []Constraint) []int {
	sizes := make([]int, len(constraints))
	remaining := total

	// Pass 1: fixed allocations.
	for i, c := range constraints {
		switch c := c.(type) {
		case Length:
			sizes[i] = clamp(c.Value, remaining)
			remaining -= sizes[i]
		case Percentage:
			sizes[i] = clamp(total*c.Value/100, remaining)
			remaining -= sizes[i]
		case Min:
			sizes[i] = clamp(c.Value, remaining)
			remaining -= sizes[i]
		}
	}

	// Pass 2: weighted fill of what is left.
	totalWeight := 0
	for _, c := range constraints {
		if f, ok := c.(Fill); ok {
			totalWeight += fillWeight(f)
		}
	}
	if totalWeight > 0 && remaining > 0 {
		distributed := 0
		last := -1
		for i, c := range constraints {
			if f, ok := c.(Fill); ok {
				sizes[i] = remaining * fillWeight(f) / totalWeight
				distributed += sizes[i]
				last = i
			}
		}
		// Rounding remainder goes to the last fill item.
		if last >= 0 {
			sizes[last] += remaining - distributed
		}
		remaining = 0
	}

	// Pass 3: surplus after fixed allocations with no Fill goes to the
	// Min items, equally.
	if remaining > 0 {
		var mins []int
		for i, c := range constraints {
			if _, ok := c.(Min); ok {
				mins = append(mins, i)
			}
		}
		for len(mins) > 0 && remaining > 0 {
			share := remaining / len(mins)
			if share == 0 {
				share = 1
			}
			for _, i := range mins {
				if remaining == 0 {
					break
				}
				grow := share
				if grow > remaining {
					grow = remaining
				}
				sizes[i] += grow
				remaining -= grow
			}
		}
	}

	return sizes
}

func fillWeight(f Fill) int {
	if f.Weight <= 0 {
		return 1
	}
	return f.Weight
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
