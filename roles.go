package auth

import "sort"

// RoleNames returns the distinct role names attached to the user, sorted.
// Nil role references are skipped rather than treated as corrupt data; a
// partially loaded graph yields a smaller claim set, not a failed login.
func (u *User) RoleNames() []string {
	if u == nil {
		return nil
	}

	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		if role == nil || role.Name == "" {
			continue
		}
		names = append(names, role.Name)
	}

	return sortedUnique(names)
}

// PermissionCodes returns the distinct permission codes reachable through
// the user's roles, sorted lexicographically for deterministic token
// content. Nil role and permission references are skipped.
func (u *User) PermissionCodes() []string {
	if u == nil {
		return nil
	}

	var codes []string
	for _, role := range u.Roles {
		if role == nil {
			continue
		}
		for _, perm := range role.Permissions {
			if perm == nil || perm.Code == "" {
				continue
			}
			codes = append(codes, perm.Code)
		}
	}

	return sortedUnique(codes)
}

// HasRole checks if the user holds a role with the given name.
func (u *User) HasRole(name string) bool {
	if u == nil {
		return false
	}
	for _, role := range u.Roles {
		if role != nil && role.Name == name {
			return true
		}
	}
	return false
}

func sortedUnique(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	sort.Strings(out)
	return out
}
