// Package proto holds the generated gRPC bindings for
// proto/gophmatch/v1/match.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/gophmatch --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/gophmatch gophmatch/v1/match.proto
