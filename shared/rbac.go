// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import "github.com/labstack/echo/v4"

// AccessControl is the per-organization RBAC surface. One instance is bound
// to a single organization domain.
type AccessControl interface {
	HasAccess(subject string) (bool, error)

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GetAllRoles(user string) []string

	GrantRole(subject string, role Role) error
	RevokeRole(subject string, role Role) error

	AllowRole(role Role, object Object, action []Action) error
	IsAllowed(subject string, object Object, action Action) (bool, error)

	GetAllMembersOfOrganization() ([]string, error)
	GetOwnerOfOrganization() (string, error)

	GetDomainRole(user string) (Role, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectOrganization Object = "organization"
	ObjectVendor       Object = "vendor"
	ObjectContract     Object = "contract"
	ObjectDocument     Object = "document"
	ObjectRisk         Object = "risk"
	ObjectRegister     Object = "register"
	ObjectWebhook      Object = "webhook"
	ObjectUser         Object = "user"
)
