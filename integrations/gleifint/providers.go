// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package gleifint

import (
	"go.uber.org/fx"

	"github.com/doracomply/doracomply/shared"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewGleifClient, fx.As(new(shared.GleifClient))),
	),
)
