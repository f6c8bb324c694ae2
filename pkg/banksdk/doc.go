// Package banksdk provides a typed Go client for the Seeka bank service
// HTTP API, together with the wire types and error codes the service
// speaks. The server handlers and the client share these definitions so
// the two sides cannot drift apart.
//
// Basic usage:
//
//	client := banksdk.NewClient("http://localhost:8080")
//	if err := client.Login(ctx, "customer@seeka.com", "password"); err != nil {
//		// *banksdk.APIError carries the HTTP status and error code
//	}
//	decisions, err := client.ListDecisions(ctx)
//
// The service holds a single process-wide identity, so the client carries
// no token state: Login and Logout mutate the server-side session.
package banksdk
