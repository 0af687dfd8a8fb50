// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package aiint

import (
	"go.uber.org/fx"

	"github.com/doracomply/doracomply/shared"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewAIExtractor, fx.As(new(shared.DocumentExtractor))),
	),
)
