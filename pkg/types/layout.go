package types

// CheckLayout verifies the placement invariants of a partition sequence:
// starts never go back before the end of the previous partition, and only the
// last partition may use the Full size.
func CheckLayout(parts []Partition) error {
	for i, p := range parts {
		if p.Size.IsFull() && i != len(parts)-1 {
			return Errorf(ErrKindConstraint,
				"partition %q takes the rest of the device but is followed by %q",
				p.Name, parts[i+1].Name)
		}
		if i == 0 {
			continue
		}
		prev := parts[i-1]
		end, _ := prev.End()
		if p.Start < end {
			return Errorf(ErrKindConstraint,
				"partition %q starts at %d, inside %q (ends at %d)",
				p.Name, p.Start, prev.Name, end)
		}
	}
	return nil
}
