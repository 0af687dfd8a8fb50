// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/utils"
)

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

func SetOrg(c Context, org models.Org) {
	c.Set("organization", org)
}

func SetOrgSlug(ctx Context, orgSlug string) {
	ctx.Set("orgSlug", orgSlug)
}

func GetOrg(c Context) models.Org {
	return c.Get("organization").(models.Org)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func SetVendor(ctx Context, vendor models.Vendor) {
	ctx.Set("vendor", vendor)
}

func GetVendor(ctx Context) models.Vendor {
	return ctx.Get("vendor").(models.Vendor)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetOrgSlug(ctx Context) (string, error) {
	orgSlug := GetParam(ctx, "organization")
	if orgSlug == "" {
		return "", fmt.Errorf("could not get org slug")
	}
	return orgSlug, nil
}

func GetVendorSlug(ctx Context) (string, error) {
	vendorSlug := GetParam(ctx, "vendorSlug")
	if vendorSlug == "" {
		return "", fmt.Errorf("could not get vendor slug")
	}
	return vendorSlug, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

type FilterQuery struct {
	field    string
	value    string
	operator string
}

// GetFilterQuery parses query params of the form
// filterQuery[residual_impact][is]=4 into filter clauses.
func GetFilterQuery(ctx Context) []FilterQuery {
	query := ctx.QueryParams()
	filterQuerys := []FilterQuery{}
	for key := range query {
		if !strings.HasPrefix(key, "filterQuery") {
			continue
		}

		value := query.Get(key)

		key = strings.TrimPrefix(key, "filterQuery")
		field := strings.Split(key, "[")[1]
		field = strings.TrimSuffix(field, "]")

		operator := strings.Split(key, "[")[2]
		operator = strings.TrimSuffix(operator, "]")

		filterQuerys = append(filterQuerys, FilterQuery{
			field:    field,
			value:    value,
			operator: operator,
		})
	}

	return filterQuerys
}

type SortQuery struct {
	Field    string
	Operator string // asc or desc
}

// GetSortQuery parses query params of the form sort[expiry_date]=desc.
func GetSortQuery(ctx Context) []SortQuery {
	query := ctx.QueryParams()
	sortQuerys := []SortQuery{}
	for key := range query {
		if !strings.HasPrefix(key, "sort") {
			continue
		}

		operator := query.Get(key)

		key = strings.TrimPrefix(key, "sort")
		field := strings.Split(key, "[")[1]
		field = strings.TrimSuffix(field, "]")

		sortQuerys = append(sortQuerys, SortQuery{
			Field:    field,
			Operator: operator,
		})
	}

	return sortQuerys
}

func quoteFields(field string) string {
	split := strings.Split(field, ".")
	quotedSplits := utils.Map(
		split,
		func(s string) string {
			return fmt.Sprintf(`"%s"`, s)
		},
	)

	return strings.Join(quotedSplits, ".")
}

var validFieldNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.]+$")

func sanitizeField(field string) string {
	if !validFieldNameRegex.MatchString(field) {
		panic("invalid field name - to risky, might be sql injection")
	}

	return quoteFields(field)
}

func (f FilterQuery) SQL() string {
	field := sanitizeField(f.field)

	switch f.operator {
	case "is":
		return field + " = ?"
	case "is not":
		return field + " != ?"
	case "is greater than":
		return field + " > ?"
	case "is less than":
		return field + " < ?"
	case "is after":
		return field + " > ?"
	case "is before":
		return field + " < ?"
	case "like":
		return field + " LIKE ?"
	default:
		return f.field + " = ?"
	}
}

func (f FilterQuery) Value() any {
	switch f.operator {
	case "like":
		return "%" + f.value + "%"
	default:
		return f.value
	}
}

func (s SortQuery) SQL() string {
	field := sanitizeField(s.Field)

	switch s.Operator {
	case "asc":
		return field + " asc"
	case "desc":
		return field + " desc NULLS LAST"
	default:
		return s.Field + " asc NULLS LAST"
	}
}

