// Package pb holds the protobuf messages and gRPC stubs generated from
// api/proto/pricing.proto and api/proto/inventory.proto.
package pb

//go:generate protoc -I ../../../../api/proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative pricing.proto inventory.proto
