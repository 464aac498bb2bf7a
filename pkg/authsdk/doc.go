/*
Package authsdk provides wire types and a Go client for the notedesk session service.

# Overview

The service uses a dual-token model. Logging in returns a short-lived access token in the
response body and a long-lived refresh token in an HTTP-only cookie named "jwt". The access
token authenticates API calls; the refresh cookie is exchanged for a new access token once the
old one expires.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (health probes, login, raw refresh and logout)
  - Session: an authenticated session that refreshes its access token automatically

Typical use:

	client := authsdk.NewSDKClient("https://auth.example.com")

	session, err := client.Login(ctx, "alice", "correct horse battery staple")
	if err != nil {
		var apiErr *authsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			// bad credentials or inactive account
		}
	}

	me, err := session.Me(ctx) // refreshes first if the access token has expired
	err = session.Logout(ctx)

The refresh cookie is kept on the Session rather than in an http.CookieJar because the cookie
is marked Secure and jars refuse to replay Secure cookies over plain HTTP.

# Errors

Every non-2xx response with a JSON body is returned as *APIError carrying the HTTP status, the
machine-readable code and the human-readable message. Servers use the same type to write their
error responses so the envelope stays identical on both sides.
*/
package authsdk
