// Package httpclient provides a configurable HTTP client used for all
// outbound calls to the remote users service.
//
// The base Client handles URL resolution, authentication headers, JSON
// bodies, and error classification. Generic typed helpers decode JSON
// responses:
//
//	client, _ := httpclient.New(httpclient.Config{
//		BaseURL: "https://getmocha.com/apps-api",
//		Auth:    httpclient.APIKeyAuth(apiKey),
//	})
//	resp, err := httpclient.Get[redirectURLResponse](client, ctx, "/oauth/google/redirect_url")
//
// Non-2xx responses are surfaced as *errors.AppError with the upstream
// status attached; transport failures are classified as connection or
// timeout errors.
package httpclient
