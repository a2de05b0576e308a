package domain

import "testing"

var (
	anon  *User
	alice = &User{ID: 1, Username: "alice", Group: GroupUser}
	bob   = &User{ID: 2, Username: "bob", Group: GroupUser}
	admin = &User{ID: 3, Username: "admin", Group: GroupAdmin}
	root  = &User{ID: 4, Username: "root", Group: GroupRoot}
)

func TestIsPrivileged(t *testing.T) {
	cases := []struct {
		name   string
		caller *User
		want   bool
	}{
		{"anonymous", anon, false},
		{"regular user", alice, false},
		{"admin", admin, true},
		{"root", root, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPrivileged(tc.caller); got != tc.want {
				t.Fatalf("IsPrivileged = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanCreateUser(t *testing.T) {
	cases := []struct {
		name   string
		caller *User
		group  string
		want   bool
	}{
		{"anonymous creates user", anon, GroupUser, true},
		{"anonymous creates admin", anon, GroupAdmin, false},
		{"anonymous creates root", anon, GroupRoot, false},
		{"user creates user", alice, GroupUser, true},
		{"user creates admin", alice, GroupAdmin, false},
		{"admin creates user", admin, GroupUser, true},
		{"admin creates admin", admin, GroupAdmin, true},
		{"admin creates root", admin, GroupRoot, false},
		{"root creates admin", root, GroupAdmin, true},
		{"root creates root", root, GroupRoot, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCreateUser(tc.caller, tc.group); got != tc.want {
				t.Fatalf("CanCreateUser = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanModifyUser(t *testing.T) {
	cases := []struct {
		name           string
		caller, target *User
		want           bool
	}{
		{"self", alice, alice, true},
		{"foreign user", alice, bob, false},
		{"admin on user", admin, alice, true},
		{"admin on admin", admin, &User{ID: 9, Group: GroupAdmin}, true},
		{"admin on root", admin, root, false},
		{"user on root", alice, root, false},
		{"root on root", root, root, true},
		{"root on other root", root, &User{ID: 9, Group: GroupRoot}, true},
		{"root on user", root, alice, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanModifyUser(tc.caller, tc.target); got != tc.want {
				t.Fatalf("CanModifyUser = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	cases := []struct {
		name           string
		caller, target *User
		want           bool
	}{
		{"self", alice, alice, true},
		{"foreign user", alice, bob, false},
		{"admin on user", admin, alice, true},
		{"admin on root", admin, root, false},
		{"root on itself", root, root, false},
		{"root on other root", root, &User{ID: 9, Group: GroupRoot}, false},
		{"root on user", root, alice, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanDeleteUser(tc.caller, tc.target); got != tc.want {
				t.Fatalf("CanDeleteUser = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanChangeGroup(t *testing.T) {
	cases := []struct {
		name   string
		caller *User
		group  string
		want   bool
	}{
		{"user demotes nobody", alice, GroupUser, false},
		{"admin grants user", admin, GroupUser, true},
		{"admin grants admin", admin, GroupAdmin, true},
		{"admin grants root", admin, GroupRoot, false},
		{"root grants root", root, GroupRoot, false},
		{"root grants admin", root, GroupAdmin, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanChangeGroup(tc.caller, tc.group); got != tc.want {
				t.Fatalf("CanChangeGroup = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanModifyListing(t *testing.T) {
	owned := func(ownerID int64) *Advertisement {
		return &Advertisement{ID: 10, OwnerID: &ownerID}
	}
	orphan := &Advertisement{ID: 11}

	cases := []struct {
		name   string
		caller *User
		ad     *Advertisement
		want   bool
	}{
		{"anonymous", anon, owned(1), false},
		{"owner", alice, owned(1), true},
		{"foreign user", bob, owned(1), false},
		{"admin on foreign", admin, owned(1), true},
		{"root on foreign", root, owned(1), true},
		{"user on orphan", alice, orphan, false},
		{"admin on orphan", admin, orphan, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanModifyListing(tc.caller, tc.ad); got != tc.want {
				t.Fatalf("CanModifyListing = %v, want %v", got, tc.want)
			}
			if got := CanDeleteListing(tc.caller, tc.ad); got != tc.want {
				t.Fatalf("CanDeleteListing = %v, want %v", got, tc.want)
			}
		})
	}
}
