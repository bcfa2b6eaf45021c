package types

// Right is the closed permission vocabulary attached to a deadline.
//
// The zero value is RightNo, which is also the resolution for an absent or
// unknown right: anything the schedule does not explicitly grant is denied.
type Right int

const (
	// RightNo forbids the activity. Zero value; absent rights resolve here.
	RightNo Right = iota

	// RightLate permits the activity with a lateness penalty applied by the
	// surrounding application. The engine only reports the status.
	RightLate

	// RightOK fully permits the activity.
	RightOK
)

// rightNames maps Right values to their canonical string form.
var rightNames = map[Right]string{
	RightNo:   "no",
	RightLate: "late",
	RightOK:   "ok",
}

// String returns the canonical lower-case name of the right.
// Out-of-range values render as "no".
func (r Right) String() string {
	if name, ok := rightNames[r]; ok {
		return name
	}

	return "no"
}

// Valid reports whether r is one of the three known rights.
func (r Right) Valid() bool {
	_, ok := rightNames[r]
	return ok
}

// Grants reports whether the right permits the activity, with or without
// penalty. Unknown values never grant access.
func (r Right) Grants() bool {
	return r == RightLate || r == RightOK
}
