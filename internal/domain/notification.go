package domain

// SeenCounts is the number of approved and rejected outcomes a user has acknowledged
type SeenCounts struct {
	Approved int
	Rejected int
}

// UnseenCounts is the badge value shown to the user
type UnseenCounts struct {
	Approved int
	Rejected int
}

// Total returns the sum of both badges
func (u UnseenCounts) Total() int {
	return u.Approved + u.Rejected
}

// Unseen computes badges from current totals and acknowledged counts; never negative
func Unseen(current, seen SeenCounts) UnseenCounts {
	return UnseenCounts{
		Approved: max(0, current.Approved-seen.Approved),
		Rejected: max(0, current.Rejected-seen.Rejected),
	}
}
