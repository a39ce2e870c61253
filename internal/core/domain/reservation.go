package domain

// Reservation is a description record, optionally attributed to the regular
// user who created it. Admin-created reservations have an empty Owner.
type Reservation struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
}

// ReservationPatch carries the fields to overwrite on update. Nil fields are
// left untouched; the id can never be patched.
type ReservationPatch struct {
	Description *string
	Owner       *string
}

// Apply returns r with the non-nil patch fields merged over it.
func (p ReservationPatch) Apply(r Reservation) Reservation {
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Owner != nil {
		r.Owner = *p.Owner
	}
	return r
}

// IsEmpty reports whether the patch would change nothing.
func (p ReservationPatch) IsEmpty() bool {
	return p.Description == nil && p.Owner == nil
}
