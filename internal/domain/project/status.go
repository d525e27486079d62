package project

// Status represents the lifecycle stage of a Project.
type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusOnHold     Status = "ON_HOLD"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists every valid Status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusCreated, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Visibility controls who may discover a Project.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// Visibilities lists every valid Visibility.
func Visibilities() []Visibility {
	return []Visibility{VisibilityPublic, VisibilityPrivate}
}

// IsValid returns true if the visibility is one of the defined constants.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// String implements fmt.Stringer.
func (v Visibility) String() string {
	return string(v)
}
