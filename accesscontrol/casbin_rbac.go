// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package accesscontrol

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"

	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/utils"
	"gorm.io/gorm"
)

var _ shared.AccessControl = &casbinRBAC{}
var casbinEnforcer *casbin.SyncedEnforcer

// rbacModel is a domain RBAC model: subjects hold roles per organization
// domain, policies bind roles to object/action pairs within a domain.
const rbacModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

type casbinRBAC struct {
	domain   string // scopes this to a specific domain - or organization
	enforcer *casbin.SyncedEnforcer
}

type casbinRBACProvider struct {
	enforcer *casbin.SyncedEnforcer
}

func (c casbinRBACProvider) GetDomainRBAC(domain string) shared.AccessControl {
	return &casbinRBAC{
		domain:   domain,
		enforcer: c.enforcer,
	}
}

func (c casbinRBACProvider) DomainsOfUser(user string) ([]string, error) {
	domains, err := c.enforcer.GetDomainsForUser("user::" + user)
	if err != nil {
		return nil, err
	}
	// slice the "domain::" prefix
	for i, d := range domains {
		domains[i] = d[8:]
	}
	return domains, nil
}

func (c *casbinRBAC) GetOwnerOfOrganization() (string, error) {
	listOfUsers := c.enforcer.GetUsersForRoleInDomain("role::owner", "domain::"+c.domain)
	if len(listOfUsers) == 0 {
		return "", fmt.Errorf("no owner found for organization")
	}
	if len(listOfUsers) > 1 {
		return "", fmt.Errorf("more than one owner found for organization")
	}
	return strings.TrimPrefix(listOfUsers[0], "user::"), nil
}

func (c *casbinRBAC) GetAllMembersOfOrganization() ([]string, error) {
	users, err := c.enforcer.GetAllUsersByDomain("domain::" + c.domain)
	if err != nil {
		return nil, err
	}
	return utils.Map(utils.Filter(users, func(u string) bool {
		return strings.HasPrefix(u, "user::")
	}), func(u string) string {
		return strings.TrimPrefix(u, "user::")
	}), nil
}

func (c *casbinRBAC) HasAccess(user string) (bool, error) {
	roles := c.enforcer.GetRolesForUserInDomain("user::"+user, "domain::"+c.domain)
	return len(roles) > 0, nil
}

func (c *casbinRBAC) GetAllRoles(user string) []string {
	roles, err := c.enforcer.GetImplicitRolesForUser("user::"+user, "domain::"+c.domain)
	if err != nil {
		slog.Error("GetAllRoles failed", "err", err)
		return []string{}
	}
	return roles
}

func (c *casbinRBAC) GetDomainRole(user string) (shared.Role, error) {
	dbRoles := c.GetAllRoles(user)
	roles := utils.Map(utils.Filter(dbRoles, func(r string) bool {
		return strings.HasPrefix(r, "role::")
	}), func(r string) shared.Role {
		return shared.Role(strings.TrimPrefix(r, "role::"))
	})

	role, err := getMostPowerfulRole(roles)
	if err != nil {
		slog.Warn("GetDomainRole: no domain role found for user", "user", user, "roles", roles, "domain", c.domain)
	}
	return role, err
}

func getMostPowerfulRole(roles []shared.Role) (shared.Role, error) {
	for _, candidate := range []shared.Role{shared.RoleOwner, shared.RoleAdmin, shared.RoleMember} {
		for _, r := range roles {
			if r == candidate {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("no domain role found for user. Roles from user: %v", roles)
}

func (c *casbinRBAC) GrantRole(user string, role shared.Role) error {
	_, err := c.enforcer.AddRoleForUserInDomain("user::"+user, "role::"+string(role), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) RevokeRole(user string, role shared.Role) error {
	_, err := c.enforcer.DeleteRoleForUserInDomain("user::"+user, "role::"+string(role), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	_, err := c.enforcer.AddRoleForUserInDomain("role::"+string(roleWhichGetsPermissions), "role::"+string(roleWhichProvidesPermissions), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) AllowRole(role shared.Role, object shared.Object, action []shared.Action) error {
	policies := make([][]string, len(action))
	for i, ac := range action {
		policies[i] = []string{"role::" + string(role), "domain::" + c.domain, "obj::" + string(object), "act::" + string(ac)}
	}

	_, err := c.enforcer.AddPolicies(policies)
	return err
}

func (c *casbinRBAC) IsAllowed(user string, object shared.Object, action shared.Action) (bool, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser("user::"+user, "domain::"+c.domain)
	if err != nil {
		return false, err
	}

	for _, p := range permissions {
		if p[2] == "obj::"+string(object) && p[3] == "act::"+string(action) {
			return true, nil
		}
	}
	return false, nil
}

// the provider can be used to create domain specific RBAC instances
func NewCasbinRBACProvider(db *gorm.DB) (casbinRBACProvider, error) {
	enforcer, err := buildEnforcer(db)
	if err != nil {
		return casbinRBACProvider{}, err
	}
	return casbinRBACProvider{
		enforcer: enforcer,
	}, nil
}

func buildEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	if casbinEnforcer != nil {
		return casbinEnforcer, nil
	}
	// The adapter uses the default table name "casbin_rule" and creates it if
	// it does not exist.
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m, a)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)

	if err = e.LoadPolicy(); err != nil {
		log.Println("LoadPolicy failed, err: ", err)
	}

	casbinEnforcer = e

	return e, nil
}
