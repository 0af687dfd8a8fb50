// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// BootstrapOrg seeds the role hierarchy and base permissions of a fresh
// organization. Owner inherits admin, admin inherits member.
func BootstrapOrg(rbac AccessControl, userID string, userRole Role) error {
	if err := rbac.GrantRole(userID, userRole); err != nil {
		return err
	}

	if err := rbac.InheritRole(RoleOwner, RoleAdmin); err != nil {
		return err
	}
	if err := rbac.InheritRole(RoleAdmin, RoleMember); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleOwner, ObjectOrganization, []Action{
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectOrganization, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}

	for _, obj := range []Object{ObjectVendor, ObjectContract, ObjectDocument, ObjectRisk, ObjectRegister, ObjectWebhook} {
		if err := rbac.AllowRole(RoleAdmin, obj, []Action{
			ActionCreate,
			ActionUpdate,
			ActionDelete,
		}); err != nil {
			return err
		}

		if err := rbac.AllowRole(RoleMember, obj, []Action{
			ActionRead,
		}); err != nil {
			return err
		}
	}

	if err := rbac.AllowRole(RoleMember, ObjectOrganization, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	return nil
}
