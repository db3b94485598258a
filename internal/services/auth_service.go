// auth_service.go
//
// A reusable software component catalog service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-catalog.
// jam-build-catalog is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-catalog is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-catalog.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/localnerve/authorizer-go"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/config"
	"github.com/localnerve/jam-build-catalog/internal/logger"
	"github.com/localnerve/jam-build-catalog/internal/utils"
)

// AuthorizerValidator resolves Authorizer session cookies into catalog principals.
// The client is created on first use, once the request origin is known.
type AuthorizerValidator struct {
	cfg *config.Config
	log *logger.Logger

	once    sync.Once
	client  *authorizer.AuthorizerClient
	initErr error
}

// NewAuthorizerValidator creates a validator for the configured Authorizer.
func NewAuthorizerValidator(cfg *config.Config, log *logger.Logger) *AuthorizerValidator {
	return &AuthorizerValidator{cfg: cfg, log: log}
}

// Init creates the Authorizer client. Only the first call has any effect.
func (v *AuthorizerValidator) Init(ctx context.Context, redirectURL string) error {
	v.once.Do(func() {
		if err := utils.PingAuthorizer(ctx, v.cfg.AuthzURL); err != nil {
			v.initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		v.log.Info("initializing authorizer", "url", v.cfg.AuthzURL, "clientID", v.cfg.AuthzClientID, "redirectURL", redirectURL)

		client, err := authorizer.NewAuthorizerClient(v.cfg.AuthzClientID, v.cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			v.initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
		v.client = client
	})
	return v.initErr
}

// sessionUser is the subset of the Authorizer user the catalog needs.
type sessionUser struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}

// ValidateSession validates a session cookie and maps the user to a principal.
func (v *AuthorizerValidator) ValidateSession(ctx context.Context, cookie string) (*catalog.Principal, error) {
	if v.client == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	res, err := v.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	// round trip through JSON so only the id and roles fields are relied on
	raw, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("unreadable session user: %w", err)
	}
	var user sessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("unreadable session user: %w", err)
	}

	return PrincipalFor(user.ID, user.Roles, v.cfg.AuthzAdminRole)
}

// PrincipalFor maps an identity and its roles to a principal. Holding adminRole makes an admin.
func PrincipalFor(id string, roles []string, adminRole string) (*catalog.Principal, error) {
	if id == "" {
		return nil, fmt.Errorf("session user has no id")
	}
	p := &catalog.Principal{ID: id, Role: catalog.RoleRegular}
	for _, r := range roles {
		if r == adminRole {
			p.Role = catalog.RoleAdmin
			break
		}
	}
	return p, nil
}
