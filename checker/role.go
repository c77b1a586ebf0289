package checker

// Role is the structural position of an identifier occurrence, derived
// from its parent and grandparent nodes only, never from semantic
// inference.
type Role int

const (
	// RoleBare is an identifier in ordinary expression or declaration
	// position.
	RoleBare Role = iota
	// RoleMemberObject is the base of a member access whose object name
	// equals the occurrence text.
	RoleMemberObject
	// RoleMemberProperty is the dotted property name of a member access.
	RoleMemberProperty
	// RoleObjectKey is a key in an object literal or destructuring
	// pattern.
	RoleObjectKey
	// RolePatternShorthandValue is the bound-value aspect of a
	// destructuring shorthand, where the name is dictated by the source
	// data shape.
	RolePatternShorthandValue
)

var roleNames = map[Role]string{
	RoleBare:                  "bare",
	RoleMemberObject:          "member-object",
	RoleMemberProperty:        "member-property",
	RoleObjectKey:             "object-key",
	RolePatternShorthandValue: "pattern-shorthand-value",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "bare"
}
