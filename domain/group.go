package domain

// Group is a colored bucket of events. Exactly one group per collection is
// the default fallback and can never be deleted; any group still referenced
// by events is protected from deletion as well.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Visible   bool   `json:"visible"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"isDefault"`
}

// CreateGroupData carries user input for a new group. Order is optional;
// when nil the repository appends the group after the current maximum.
type CreateGroupData struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"required,hexcolor,len=7"`
	Order *int   `json:"order,omitempty"`
}

// UpdateGroupData is a partial patch; nil fields are left untouched.
type UpdateGroupData struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Color   *string `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
	Visible *bool   `json:"visible,omitempty"`
	Order   *int    `json:"order,omitempty"`
}
