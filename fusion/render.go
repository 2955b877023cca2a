package fusion

import "strings"

const (
	pipe  = "|"
	join  = "─"
	blank = " "
)

// String renders the tree. Every level row is 2n−1 runes wide: even columns
// are anyon slots, odd columns are gaps; a fusion (a1,a2) fills columns
// 2·a1+1 through 2·a2−1 with "─" and retires slot a2.
// Rows are not trimmed, so retired trailing slots leave trailing spaces.
// Without anyons the rendering is empty.
func (f *Fusion) String() string {
	n := len(f.anyons)
	if n == 0 {
		return ""
	}

	rows := make([]string, 0, len(f.levels)+3)

	names := make([]string, n)
	for i, a := range f.anyons {
		names[i] = a.Name()
	}
	rows = append(rows, strings.Join(names, " "))

	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	rows = append(rows, slotRow(active))

	for _, lv := range f.levels {
		cells := make([]string, 2*n-1)
		for i := range cells {
			cells[i] = blank
			if i%2 == 0 && active[i/2] {
				cells[i] = pipe
			}
		}
		for _, p := range lv.Pairs {
			for i := 2*p.Anyon1() + 1; i <= 2*p.Anyon2()-1; i++ {
				cells[i] = join
			}
			active[p.Anyon2()] = false
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	rows = append(rows, slotRow(active))

	return strings.Join(rows, "\n")
}

// slotRow marks active slots with a pipe, separated by single spaces.
func slotRow(active []bool) string {
	cells := make([]string, len(active))
	for i, on := range active {
		cells[i] = blank
		if on {
			cells[i] = pipe
		}
	}

	return strings.Join(cells, " ")
}
