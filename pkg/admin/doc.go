// Package admin provides types, interfaces, and helpers for working with the
// game backend's admin API.
//
// # Overview
//
// The admin package defines the resource types (e.g., Achievement, Voucher,
// GameUser, Ad) and the interfaces for resource-oriented clients (e.g.,
// AchievementsClient, AdsClient). A concrete implementation is provided by the
// gameclient package, which wires configuration, the cookie session and CSRF
// forwarding. Most consumers import gameclient to construct a client and then
// use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/gameadmin/pkg/admin"
//	  "github.com/fivetwenty-io/gameadmin/pkg/gameclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gameclient.New(ctx, &admin.Config{APIEndpoint: "https://admin.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.Auth().Login(ctx, &admin.LoginRequest{Email: "ops@example.com", Password: "secret"})
//	  if err != nil { log.Fatal(err) }
//
//	  page := admin.NewPaginationState()
//	  vouchers, err := cli.Vouchers().Index(ctx, page.Query())
//	  if err != nil { log.Fatal(err) }
//	  page.UpdateFromMeta(vouchers.Meta)
//	}
//
// # Queries and pagination
//
// Query is an ordered set of list parameters rendered as "k1=v1&k2=v2".
// Values are not escaped. PaginationState tracks the cursor of one list view
// and renders it with Query.
//
// # Session
//
// Session holds the logged-in flag and the cached operator profile. The HTTP
// layer revokes it when a request comes back 401; callers check IsLoggedIn
// before issuing requests that need a login.
//
// # Errors
//
// Non-2xx responses are returned as *APIError. IsUnauthorized, IsForbidden,
// IsNotFound and IsValidation branch on the common cases.
package admin
