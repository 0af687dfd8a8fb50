// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package accesscontrol

import "github.com/doracomply/doracomply/shared"

type session struct {
	userID string
	scopes []string
}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) GetScopes() []string {
	return s.scopes
}

// NoSession is set on unauthenticated requests. Downstream middlewares decide
// if the request is still allowed.
var NoSession shared.AuthSession = session{}

func NewSession(userID string, scopes []string) shared.AuthSession {
	return session{
		userID: userID,
		scopes: scopes,
	}
}
