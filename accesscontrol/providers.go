// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package accesscontrol

import (
	"github.com/doracomply/doracomply/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewCasbinRBACProvider, fx.As(new(shared.RBACProvider))),
	),
)
