package domain

// Access predicates. Every mutating endpoint funnels its authorization
// decision through one of these so the rule set lives in a single place and
// can be tested without HTTP plumbing.
//
// Evaluation order inside each predicate: root immutability is absolute and
// checked first for user-targeting operations, then privilege, then
// self/ownership. A nil caller means an anonymous request.

// IsPrivileged reports whether the caller holds admin-level rights.
// Root is a superset of admin for every decision except root immutability.
func IsPrivileged(caller *User) bool {
	if caller == nil {
		return false
	}
	return caller.Group == GroupAdmin || caller.Group == GroupRoot
}

// CanCreateUser reports whether caller (possibly anonymous) may create an
// account with the requested group. Nobody may request root.
func CanCreateUser(caller *User, requestedGroup string) bool {
	if requestedGroup == GroupRoot {
		return false
	}
	if IsPrivileged(caller) {
		return requestedGroup == GroupUser || requestedGroup == GroupAdmin
	}
	// Anonymous and regular callers may only create regular accounts.
	return requestedGroup == GroupUser
}

// CanModifyUser reports whether caller may patch target. A root account is
// untouchable by anyone but a root caller; otherwise self or privilege wins.
func CanModifyUser(caller, target *User) bool {
	if caller == nil {
		return false
	}
	if target.Group == GroupRoot && caller.Group != GroupRoot {
		return false
	}
	if caller.Group == GroupRoot {
		return true
	}
	return caller.ID == target.ID || IsPrivileged(caller)
}

// CanDeleteUser is CanModifyUser with one extra absolute: root accounts are
// bootstrap-only and never deletable through the API, not even by themselves.
func CanDeleteUser(caller, target *User) bool {
	if target.Group == GroupRoot {
		return false
	}
	return CanModifyUser(caller, target)
}

// CanChangeGroup reports whether caller may set a user's group to
// requestedGroup. No path may grant root, regardless of caller.
func CanChangeGroup(caller *User, requestedGroup string) bool {
	if requestedGroup == GroupRoot {
		return false
	}
	return IsPrivileged(caller)
}

// CanModifyListing reports whether caller may patch the listing. A listing
// whose owner has been deleted (nil OwnerID) is only reachable by privilege.
func CanModifyListing(caller *User, ad *Advertisement) bool {
	if caller == nil {
		return false
	}
	if IsPrivileged(caller) {
		return true
	}
	return ad.OwnerID != nil && caller.ID == *ad.OwnerID
}

// CanDeleteListing mirrors CanModifyListing; deletion carries no extra rules.
func CanDeleteListing(caller *User, ad *Advertisement) bool {
	return CanModifyListing(caller, ad)
}
