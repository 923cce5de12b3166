package dock

// Registry keeps the ordered list of slider rows. Registration order is
// display order. It is the only writer of that order.
type Registry struct {
	rows  []*Row
	index map[*Parameter]*Row

	// changed runs after every insertion or removal.
	changed func()
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[*Parameter]*Row)}
}

// Register appends a row for p. Registering the same parameter again
// returns the existing row.
func (r *Registry) Register(p *Parameter) *Row {
	p.attached = true
	if row, ok := r.index[p]; ok {
		return row
	}
	row := &Row{Param: p}
	r.rows = append(r.rows, row)
	r.index[p] = row
	if p.row == nil {
		p.row = row
	}
	if r.changed != nil {
		r.changed()
	}
	return row
}

// Unregister removes row. It reports whether the row was present. Reads of
// the parameter do not register it again.
func (r *Registry) Unregister(row *Row) bool {
	if row == nil {
		return false
	}
	for i, x := range r.rows {
		if x != row {
			continue
		}
		r.rows = append(r.rows[:i], r.rows[i+1:]...)
		delete(r.index, row.Param)
		if row.Param.row == row {
			row.Param.row = nil
		}
		if r.changed != nil {
			r.changed()
		}
		return true
	}
	return false
}

// Rows returns the rows in display order. The slice must not be modified.
func (r *Registry) Rows() []*Row { return r.rows }

// Len returns the number of rows.
func (r *Registry) Len() int { return len(r.rows) }

// Heights returns one entry per row, each rowHeight.
func (r *Registry) Heights(rowHeight float64) []float64 {
	hs := make([]float64, len(r.rows))
	for i := range hs {
		hs[i] = rowHeight
	}
	return hs
}
