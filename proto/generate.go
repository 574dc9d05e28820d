// Package proto holds the gRPC protocol for the optional LLM gateway
// sidecar. Run go generate to regenerate the bindings after editing
// llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
