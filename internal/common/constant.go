// Package common contains shared constants and sentinel errors used across
// gophmatch components.
package common

// AccessTokenHeaderName is the gRPC metadata key that may carry a bare
// access token. AuthorizationHeaderName carries "Bearer <token>".
const (
	AccessTokenHeaderName   = "access_token"
	AuthorizationHeaderName = "authorization"
	BearerPrefix            = "Bearer "
)

// DefaultRole is assigned to users registered without an explicit role.
const DefaultRole = "member"

// DefaultBehaviorScore is the starting behavior score of a new user.
const DefaultBehaviorScore = 0.8
