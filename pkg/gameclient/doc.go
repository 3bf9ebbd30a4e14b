// Package gameclient provides the primary entry point for constructing a
// game admin API client that implements the admin.Client interface.
//
// It layers configuration and the HTTP transport (cookie jar, CSRF header
// forwarding, 401 handling) on top of the resource interfaces and types
// defined in the admin package. Most applications import gameclient to build a
// client, then use the returned admin.Client to reach the resource clients,
// for example Vouchers(), Ads(), GameUsers().
//
// Quick start
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
//
//	  cli, err := gameclient.New(ctx, &admin.Config{APIEndpoint: "admin.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // The backend uses a cookie session guarded by a CSRF token.
//	  if err := cli.Auth().CSRFCookie(ctx); err != nil { log.Fatal(err) }
//	  if _, err := cli.Auth().Login(ctx, &admin.LoginRequest{Email: "ops@example.com", Password: "..."}); err != nil {
//	    log.Fatal(err)
//	  }
//	  cli.Session().Authenticate()
//
//	  pager := admin.NewPaginationState()
//	  vouchers, err := cli.Vouchers().Index(ctx, pager.Query())
//	  if err != nil { log.Fatal(err) }
//	  pager.UpdateFromMeta(vouchers.Meta)
//	}
//
// Endpoints
//
// New adds "https://" when the endpoint has no scheme and strips a trailing
// slash. Every call goes to <endpoint>/api unless Config.APIPrefix says
// otherwise.
//
// TLS
//
// Config.SkipTLSVerify is refused unless GAMEADMIN_DEV_MODE is "true" or "1".
package gameclient
