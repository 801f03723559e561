package state

// Display is what the list area should show for a snapshot.
type Display int

const (
	DisplayEmpty Display = iota
	DisplayLoading
	DisplayError
	DisplayList
)

const (
	LoadingText = "Loading..."
	EmptyText   = "No movies found."
)

// Display applies the priority Loading > Error > List > Empty.
func (s Snapshot) Display() Display {
	switch {
	case s.Phase == PhaseLoading:
		return DisplayLoading
	case s.Phase == PhaseError:
		return DisplayError
	case len(s.Movies) > 0:
		return DisplayList
	default:
		return DisplayEmpty
	}
}

func (d Display) String() string {
	switch d {
	case DisplayLoading:
		return "loading"
	case DisplayError:
		return "error"
	case DisplayList:
		return "list"
	default:
		return "empty"
	}
}
