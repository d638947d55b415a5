package query

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// Column layout of the UserRoles table.
const (
	ColRoleAdmin = iota + 1
	ColRoleMC
	ColRolePresenter
	ColRoleImpact
)

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleMC        Role = "MC"
	RolePresenter Role = "Presenter"
	RoleImpact    Role = "Impact Speaker"
	RoleMember    Role = "Member"
)

// RoleNames returns the MC, presenter and impact-speaker rosters used to
// populate selection menus. An unreadable roles table yields empty rosters,
// not an error; the wizards turn an empty roster into a setup-needed message.
func (q *Queries) RoleNames(ctx context.Context) (mcs, presenters, impacts []string, err error) {
	read := func(col int) []string {
		raw, err := q.store.ReadColumn(ctx, TableUserRoles, col)
		if err != nil {
			slog.Warn("can't read roles column, treating as empty", "col", col, "error", err)
			return nil
		}
		return q.cleanColumn(raw, true)
	}
	return read(ColRoleMC), read(ColRolePresenter), read(ColRoleImpact), nil
}

// RoleIDSets reads the four ID columns of the roles table as numeric user
// identifier sets. Non-numeric and header-like cells are skipped. A single
// unreadable column degrades to empty; all four failing means the store is
// down and the error surfaces.
func (q *Queries) RoleIDSets(ctx context.Context) (map[Role]map[int64]struct{}, error) {
	roleCols := map[Role]int{
		RoleAdmin:     ColRoleAdmin,
		RoleMC:        ColRoleMC,
		RolePresenter: ColRolePresenter,
		RoleImpact:    ColRoleImpact,
	}
	out := map[Role]map[int64]struct{}{
		RoleAdmin:     {},
		RoleMC:        {},
		RolePresenter: {},
		RoleImpact:    {},
	}
	var failures int
	var lastErr error
	for role, col := range roleCols {
		raw, err := q.store.ReadColumn(ctx, TableUserRoles, col)
		if err != nil {
			slog.Warn("can't read role id column, treating as empty", "role", role, "error", err)
			failures++
			lastErr = err
			continue
		}
		for _, cell := range raw {
			cell = trim(cell)
			if cell == "" || q.Header(cell) {
				continue
			}
			id, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				continue
			}
			out[role][id] = struct{}{}
		}
	}
	if failures == len(roleCols) {
		return nil, fmt.Errorf("RoleIDSets: %w", lastErr)
	}
	return out, nil
}

// RolesFor computes the role set of one user by membership in the roles
// table ID columns. A user with no membership (or a non-numeric ID) is a
// plain Member; a store outage is an error, never a silent demotion. The set
// is recomputed on every call; nothing is cached.
func (q *Queries) RolesFor(ctx context.Context, userID string) ([]Role, error) {
	id, err := strconv.ParseInt(trim(userID), 10, 64)
	if err != nil {
		return []Role{RoleMember}, nil
	}
	sets, err := q.RoleIDSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("RolesFor: %w", err)
	}
	var roles []Role
	for _, role := range []Role{RoleAdmin, RoleMC, RolePresenter, RoleImpact} {
		if _, ok := sets[role][id]; ok {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		return []Role{RoleMember}, nil
	}
	return roles, nil
}

// HasRole reports membership of a role in a computed role list.
func HasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
