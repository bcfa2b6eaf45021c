package types

import "fmt"

// ParentKind discriminates the entity a deadline or mapping belongs to.
type ParentKind int

const (
	// ParentAssignment is an assignment with a submission/review schedule.
	ParentAssignment ParentKind = iota

	// ParentSignUpTopic is a sign-up topic with its own deadline overrides.
	ParentSignUpTopic
)

// String returns the canonical name of the parent kind.
func (k ParentKind) String() string {
	switch k {
	case ParentAssignment:
		return "assignment"
	case ParentSignUpTopic:
		return "signup_topic"
	default:
		return fmt.Sprintf("parent_kind(%d)", int(k))
	}
}

// Valid reports whether k is a known parent kind.
func (k ParentKind) Valid() bool {
	return k == ParentAssignment || k == ParentSignUpTopic
}

// ParentRef is a tagged reference to the entity that owns a set of deadlines
// (an assignment or a sign-up topic). All lookups switch explicitly on Kind;
// there is no dynamic typing anywhere in the engine.
//
// ParentRef is comparable and may be used as a map key.
type ParentRef struct {
	Kind ParentKind `json:"kind" yaml:"kind"`
	ID   string     `json:"id"   yaml:"id"`
}

// AssignmentRef builds a ParentRef for an assignment.
func AssignmentRef(id string) ParentRef {
	return ParentRef{Kind: ParentAssignment, ID: id}
}

// TopicRef builds a ParentRef for a sign-up topic.
func TopicRef(id string) ParentRef {
	return ParentRef{Kind: ParentSignUpTopic, ID: id}
}

// String returns the canonical "kind:id" form, suitable for log fields and
// storage keys.
func (p ParentRef) String() string {
	return p.Kind.String() + ":" + p.ID
}

// Valid reports whether the reference names a known kind and a non-empty ID.
func (p ParentRef) Valid() bool {
	return p.Kind.Valid() && p.ID != ""
}

// IsZero reports whether the reference is the zero value.
func (p ParentRef) IsZero() bool {
	return p == ParentRef{}
}
